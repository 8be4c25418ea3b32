package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/tarka/sparsemap/cmd/sparsemap/commands"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("sparsemap", "Report allocated extents and holes of sparse files.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	mapCmd := commands.NewMapCommand(rootCmd, app)
	scanCmd := commands.NewScanCommand(rootCmd, app)
	summaryCmd := commands.NewSummaryCommand(rootCmd, app)
	mksparseCmd := commands.NewMksparseCommand(rootCmd, app)
	punchCmd := commands.NewPunchCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		mapCmd.Name():      mapCmd,
		scanCmd.Name():     scanCmd,
		summaryCmd.Name():  summaryCmd,
		mksparseCmd.Name(): mksparseCmd,
		punchCmd.Name():    punchCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Commands that print structured output to stdout keep the logger
	// quiet unless --debug asks for it, so logs and output don't mix.
	printerCommands := map[string]bool{
		"map":     true,
		"scan":    true,
		"summary": true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(*rootCmd)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger.
func getLogger(config commands.RootCommand) *logrus.Entry {
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // Logs go to stderr so stdout stays parseable.

	if config.NoLog {
		logrusLog.Out = io.Discard
	}
	if config.Debug {
		logrusLog.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeJSON:
		logrusLog.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrusLog.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	}

	logger := logrus.NewEntry(logrusLog).WithField("version", Version)
	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
