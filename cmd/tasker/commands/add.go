package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/model"
)

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	description string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Add a new task.")
	c.Cmd.Arg("description", "Task description.").Required().StringVar(&c.description)

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
	return c.rootCmd.runTracker(ctx, model.NewAddCommand(c.description))
}
