package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/model"
)

type MarkCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	status string
	id     uint64
}

// NewMarkCommand returns the mark command.
func NewMarkCommand(rootCmd *RootCommand, app *kingpin.Application) *MarkCommand {
	c := &MarkCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("mark", "Set the status of a task.")
	c.Cmd.Arg("status", "New task status.").Required().EnumVar(&c.status, model.StatusTokens()...)
	c.Cmd.Arg("id", "Task ID.").Required().Uint64Var(&c.id)

	return c
}

func (c MarkCommand) Name() string { return c.Cmd.FullCommand() }

func (c MarkCommand) Run(ctx context.Context) error {
	status, err := model.ParseStatus(c.status)
	if err != nil {
		return fmt.Errorf("invalid status: %w", err)
	}

	return c.rootCmd.runTracker(ctx, model.NewMarkCommand(status, c.id))
}

// MarkStatusCommand is a shortcut of the mark command for a fixed status (e.g: mark-done).
type MarkStatusCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	status model.Status
	id     uint64
}

// NewMarkStatusCommand returns the mark shortcut command for a status.
func NewMarkStatusCommand(rootCmd *RootCommand, app *kingpin.Application, status model.Status) *MarkStatusCommand {
	c := &MarkStatusCommand{rootCmd: rootCmd, status: status}

	c.Cmd = app.Command("mark-"+status.String(), fmt.Sprintf("Mark a task as %s.", status))
	c.Cmd.Arg("id", "Task ID.").Required().Uint64Var(&c.id)

	return c
}

func (c MarkStatusCommand) Name() string { return c.Cmd.FullCommand() }

func (c MarkStatusCommand) Run(ctx context.Context) error {
	return c.rootCmd.runTracker(ctx, model.NewMarkCommand(c.status, c.id))
}
