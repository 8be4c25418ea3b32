package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tarka/sparsemap"
)

// SummaryCommand prints how much of a file is data and how much is
// holes.
type SummaryCommand struct {
	cmd        *kingpin.CmdClause
	rootConfig *RootCommand

	file string
}

// NewSummaryCommand returns the summary command.
func NewSummaryCommand(rootConfig *RootCommand, app *kingpin.Application) *SummaryCommand {
	cmd := app.Command("summary", "Print the data/holes storage breakdown of a file.")
	c := &SummaryCommand{cmd: cmd, rootConfig: rootConfig}

	cmd.Arg("file", "File to summarize.").Required().ExistingFileVar(&c.file)

	return c
}

// Name returns the name of the command.
func (c *SummaryCommand) Name() string { return c.cmd.FullCommand() }

// Run runs the command.
func (c *SummaryCommand) Run(ctx context.Context) error {
	f, err := os.Open(c.file)
	if err != nil {
		return err
	}
	defer f.Close()

	usage, err := sparsemap.ScanUsage(f)
	if errors.Is(err, sparsemap.ErrUnsupported) {
		// No hole visibility at all: everything counts as data.
		c.rootConfig.Logger.Warningf("Filesystem cannot report holes, counting the whole file as data")
		fi, serr := f.Stat()
		if serr != nil {
			return serr
		}
		usage = sparsemap.Usage{Data: uint64(fi.Size())}
		err = nil
	}
	if err != nil {
		return fmt.Errorf("could not scan %q: %w", c.file, err)
	}

	out := c.rootConfig.Stdout
	fmt.Fprintf(out, "%s:\n", c.file)
	fmt.Fprintf(out, "Data:  %s\n", FormatBytes(usage.Data))
	fmt.Fprintf(out, "Holes: %s\n", FormatBytes(usage.Holes))
	fmt.Fprintf(out, "Total: %s\n", FormatBytes(usage.Total()))
	return nil
}
