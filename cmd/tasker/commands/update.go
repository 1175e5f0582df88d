package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/model"
)

type UpdateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id          uint64
	description string
}

// NewUpdateCommand returns the update command.
func NewUpdateCommand(rootCmd *RootCommand, app *kingpin.Application) *UpdateCommand {
	c := &UpdateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("update", "Replace the description of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().Uint64Var(&c.id)
	c.Cmd.Arg("description", "New task description.").Required().StringVar(&c.description)

	return c
}

func (c UpdateCommand) Name() string { return c.Cmd.FullCommand() }

func (c UpdateCommand) Run(ctx context.Context) error {
	return c.rootCmd.runTracker(ctx, model.NewUpdateCommand(c.id, c.description))
}
