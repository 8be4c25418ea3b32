package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tarka/sparsemap"
)

// ScanCommand prints the data and hole segments of a file found by
// seek probing.
type ScanCommand struct {
	cmd        *kingpin.CmdClause
	rootConfig *RootCommand

	file string
}

// NewScanCommand returns the scan command.
func NewScanCommand(rootConfig *RootCommand, app *kingpin.Application) *ScanCommand {
	cmd := app.Command("scan", "Print data and hole segments found by seek probing.")
	c := &ScanCommand{cmd: cmd, rootConfig: rootConfig}

	cmd.Arg("file", "File to scan.").Required().ExistingFileVar(&c.file)

	return c
}

// Name returns the name of the command.
func (c *ScanCommand) Name() string { return c.cmd.FullCommand() }

// Run runs the command.
func (c *ScanCommand) Run(ctx context.Context) error {
	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer f.Close()

	segs, err := sparsemap.Scan(f)
	if errors.Is(err, sparsemap.ErrUnsupported) {
		return fmt.Errorf("%s: filesystem does not support sparse-aware seeks", c.file)
	}
	if err != nil {
		return fmt.Errorf("could not scan %q: %w", c.file, err)
	}

	var out bytes.Buffer
	for _, s := range segs {
		fmt.Fprintf(&out, "start=%d length=%d hole=%v\n", s.Offset, s.Length, s.Hole)
	}
	_, err = out.WriteTo(c.rootConfig.Stdout)
	return err
}
