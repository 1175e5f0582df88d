package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/model"
)

type DeleteCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id uint64
}

// NewDeleteCommand returns the delete command.
func NewDeleteCommand(rootCmd *RootCommand, app *kingpin.Application) *DeleteCommand {
	c := &DeleteCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("delete", "Delete a task.").Alias("rm")
	c.Cmd.Arg("id", "Task ID.").Required().Uint64Var(&c.id)

	return c
}

func (c DeleteCommand) Name() string { return c.Cmd.FullCommand() }

func (c DeleteCommand) Run(ctx context.Context) error {
	return c.rootCmd.runTracker(ctx, model.NewDeleteCommand(c.id))
}
