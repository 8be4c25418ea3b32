package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alecthomas/units"

	"github.com/tarka/sparsemap"
)

// MksparseCommand creates a sparse file of a given apparent size.
type MksparseCommand struct {
	cmd        *kingpin.CmdClause
	rootConfig *RootCommand

	file string
	size units.Base2Bytes
}

// NewMksparseCommand returns the mksparse command.
func NewMksparseCommand(rootConfig *RootCommand, app *kingpin.Application) *MksparseCommand {
	cmd := app.Command("mksparse", "Create a sparse file of the given apparent size.")
	c := &MksparseCommand{cmd: cmd, rootConfig: rootConfig}

	cmd.Arg("file", "File to create (must not exist).").Required().StringVar(&c.file)
	cmd.Flag("size", "Apparent size of the file (e.g. 1GiB, 512KiB).").Short('s').Required().BytesVar(&c.size)

	return c
}

// Name returns the name of the command.
func (c *MksparseCommand) Name() string { return c.cmd.FullCommand() }

// Run runs the command.
func (c *MksparseCommand) Run(ctx context.Context) error {
	f, err := sparsemap.CreateSparseFile(c.file, int64(c.size))
	if err != nil {
		return fmt.Errorf("could not create sparse file %q: %w", c.file, err)
	}
	defer f.Close()

	c.rootConfig.Logger.Infof("Created sparse file %q with apparent size %v", c.file, c.size)
	return nil
}
