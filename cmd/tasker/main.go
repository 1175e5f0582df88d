package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/oklog/run"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/slok/tasker/cmd/tasker/commands"
	"github.com/slok/tasker/internal/log"
	loglogrus "github.com/slok/tasker/internal/log/logrus"
	"github.com/slok/tasker/internal/model"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("tasker", "Local task tracker.")
	app.DefaultEnvars()
	app.Version(Version)
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	cmds := map[string]commands.Command{}
	for _, cmd := range []commands.Command{
		commands.NewAddCommand(rootCmd, app),
		commands.NewUpdateCommand(rootCmd, app),
		commands.NewDeleteCommand(rootCmd, app),
		commands.NewMarkCommand(rootCmd, app),
		commands.NewMarkStatusCommand(rootCmd, app, model.StatusInProgress),
		commands.NewMarkStatusCommand(rootCmd, app, model.StatusDone),
		commands.NewMarkStatusCommand(rootCmd, app, model.StatusTodo),
		commands.NewListCommand(rootCmd, app),
		commands.NewWatchCommand(rootCmd, app),
		commands.NewExportCommand(rootCmd, app),
		commands.NewImportCommand(rootCmd, app),
	} {
		cmds[cmd.Name()] = cmd
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Commands that print the tasks don't log unless debug is enabled, so
	// the logs don't get mixed with the output in the terminal.
	quietCommands := map[string]bool{
		"list":   true,
		"export": true,
	}
	if quietCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)
	ctx = rootCmd.Logger.SetValuesOnCtx(ctx, log.Kv{"cmd": cmdName})

	// Config file.
	if err := rootCmd.LoadConfig(ctx); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

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
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version":    Version,
		"invocation": ulid.Make().String(),
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
