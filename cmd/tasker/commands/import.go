package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/app/tracker"
)

type ImportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	path string
}

// NewImportCommand returns the import command.
func NewImportCommand(rootCmd *RootCommand, app *kingpin.Application) *ImportCommand {
	c := &ImportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("import", "Replace the stored tasks with the ones of a tasks file.")
	c.Cmd.Arg("file", "Tasks file to import, use '-' to read from stdin.").Required().StringVar(&c.path)

	return c
}

func (c ImportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ImportCommand) Run(ctx context.Context) error {
	text, err := c.read()
	if err != nil {
		return fmt.Errorf("could not read %q: %w", c.path, err)
	}

	return c.rootCmd.withService(ctx, func(svc *tracker.Service) error {
		tasks, err := svc.Import(ctx, text)
		if err != nil {
			return fmt.Errorf("could not import tasks: %w", err)
		}

		return c.rootCmd.newPrinter().PrintMessage(fmt.Sprintf("Imported %d tasks", len(tasks)))
	})
}

func (c ImportCommand) read() (string, error) {
	if c.path == "-" {
		data, err := io.ReadAll(c.rootCmd.Stdin)
		return string(data), err
	}

	data, err := os.ReadFile(c.path)
	return string(data), err
}
