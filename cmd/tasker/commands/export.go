package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/app/tracker"
)

type ExportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewExportCommand returns the export command.
func NewExportCommand(rootCmd *RootCommand, app *kingpin.Application) *ExportCommand {
	c := &ExportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("export", "Print the stored tasks in the tasks file format.")

	return c
}

func (c ExportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ExportCommand) Run(ctx context.Context) error {
	return c.rootCmd.withService(ctx, func(svc *tracker.Service) error {
		text, err := svc.Export(ctx)
		if err != nil {
			return fmt.Errorf("could not export tasks: %w", err)
		}

		_, err = io.WriteString(c.rootCmd.Stdout, text)
		return err
	})
}
