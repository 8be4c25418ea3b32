package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alecthomas/units"

	"github.com/tarka/sparsemap"
)

// PunchCommand deallocates a byte range of a file, turning it into a
// hole.
type PunchCommand struct {
	cmd        *kingpin.CmdClause
	rootConfig *RootCommand

	file   string
	offset int64
	length units.Base2Bytes
}

// NewPunchCommand returns the punch command.
func NewPunchCommand(rootConfig *RootCommand, app *kingpin.Application) *PunchCommand {
	cmd := app.Command("punch", "Punch a hole into a file, deallocating its storage.")
	c := &PunchCommand{cmd: cmd, rootConfig: rootConfig}

	cmd.Arg("file", "File to punch into.").Required().ExistingFileVar(&c.file)
	cmd.Flag("offset", "Byte offset the hole starts at.").Default("0").Int64Var(&c.offset)
	cmd.Flag("length", "Length of the hole (e.g. 64KiB).").Short('l').Required().BytesVar(&c.length)

	return c
}

// Name returns the name of the command.
func (c *PunchCommand) Name() string { return c.cmd.FullCommand() }

// Run runs the command.
func (c *PunchCommand) Run(ctx context.Context) error {
	f, err := os.OpenFile(c.file, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	err = sparsemap.PunchHole(f, c.offset, int64(c.length))
	if errors.Is(err, sparsemap.ErrUnsupported) {
		return fmt.Errorf("%s: filesystem or platform does not support hole punching", c.file)
	}
	if err != nil {
		return fmt.Errorf("could not punch hole into %q: %w", c.file, err)
	}

	c.rootConfig.Logger.Infof("Punched hole at offset %d, length %v", c.offset, c.length)
	return nil
}
