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

// MapCommand prints the allocated extents of a file.
type MapCommand struct {
	cmd        *kingpin.CmdClause
	rootConfig *RootCommand

	file       string
	start      uint64
	length     uint64
	singlePage bool
	noFallback bool
}

// NewMapCommand returns the map command.
func NewMapCommand(rootConfig *RootCommand, app *kingpin.Application) *MapCommand {
	cmd := app.Command("map", "Print the allocated extents of a file.")
	c := &MapCommand{cmd: cmd, rootConfig: rootConfig}

	cmd.Arg("file", "File to map.").Required().ExistingFileVar(&c.file)
	cmd.Flag("start", "Logical byte offset to map from.").Default("0").Uint64Var(&c.start)
	cmd.Flag("length", "Byte length to map (0 means to end of file).").Default("0").Uint64Var(&c.length)
	cmd.Flag("single-page", "Issue a single whole-file query even if the result is truncated.").BoolVar(&c.singlePage)
	cmd.Flag("no-fallback", "Fail instead of falling back to seek probing on filesystems without extent mapping.").BoolVar(&c.noFallback)

	return c
}

// Name returns the name of the command.
func (c *MapCommand) Name() string { return c.cmd.FullCommand() }

// Run runs the command.
func (c *MapCommand) Run(ctx context.Context) error {
	logger := c.rootConfig.Logger

	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer f.Close()

	length := sparsemap.WholeFile
	if c.length != 0 {
		length = c.length
	}

	var extents []sparsemap.Extent
	var more bool
	if c.singlePage {
		extents, more, err = sparsemap.QuickExtents(f)
	} else {
		extents, err = sparsemap.ExtentsInRange(f, c.start, length)
	}

	switch {
	case errors.Is(err, sparsemap.ErrUnsupported):
		// Not an I/O failure: this filesystem cannot report extents.
		if c.noFallback {
			return fmt.Errorf("%s: filesystem does not support extent mapping", c.file)
		}
		logger.Warningf("Filesystem does not support extent mapping, falling back to seek probing")
		extents, err = sparsemap.SparseMap(f)
		if err != nil {
			return fmt.Errorf("could not map %q: %w", c.file, err)
		}
	case err != nil:
		return fmt.Errorf("could not map %q: %w", c.file, err)
	}

	if more {
		logger.Warningf("Extent map truncated at %d entries, rerun without --single-page for the full map", len(extents))
	}

	// Buffer output so we print only on success.
	var out bytes.Buffer
	for _, e := range extents {
		fmt.Fprintf(&out, "logical=%d physical=%d length=%d flags=%#04x\n",
			e.Logical, e.Physical, e.Length, e.Flags)
	}
	_, err = out.WriteTo(c.rootConfig.Stdout)
	return err
}
