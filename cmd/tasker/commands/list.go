package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/model"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	statusFilter string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List tasks.").Alias("ls")
	c.Cmd.Arg("status", "Only list the tasks with this status.").EnumVar(&c.statusFilter, model.StatusTokens()...)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	filter, err := parseStatusFilter(c.statusFilter)
	if err != nil {
		return err
	}

	return c.rootCmd.runTracker(ctx, model.NewListCommand(filter))
}

// parseStatusFilter returns nil when no status is given.
func parseStatusFilter(token string) (*model.Status, error) {
	if token == "" {
		return nil, nil
	}

	status, err := model.ParseStatus(token)
	if err != nil {
		return nil, fmt.Errorf("invalid status filter: %w", err)
	}
	return &status, nil
}
