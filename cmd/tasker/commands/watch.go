package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasker/internal/app/tracker"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/storage/file"
)

type WatchCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	statusFilter string
}

// NewWatchCommand returns the watch command.
func NewWatchCommand(rootCmd *RootCommand, app *kingpin.Application) *WatchCommand {
	c := &WatchCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("watch", "List tasks and list them again every time the tasks file changes.")
	c.Cmd.Arg("status", "Only list the tasks with this status.").EnumVar(&c.statusFilter, model.StatusTokens()...)

	return c
}

func (c WatchCommand) Name() string { return c.Cmd.FullCommand() }

func (c WatchCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.logger()

	if c.rootCmd.Storage != model.StorageFile {
		return fmt.Errorf("watch requires %q storage: %w", model.StorageFile, model.ErrNotValid)
	}

	filter, err := parseStatusFilter(c.statusFilter)
	if err != nil {
		return err
	}

	repo, err := file.NewRepository(file.RepositoryConfig{
		Path:   c.rootCmd.TasksFile,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create file repository: %w", err)
	}

	svc, err := tracker.NewService(tracker.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	p := c.rootCmd.newPrinter()
	list := func() error {
		out, err := svc.Run(ctx, model.NewListCommand(filter))
		if err != nil {
			return err
		}
		return p.PrintOutcome(out)
	}

	if err := list(); err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	return repo.Watch(ctx, func() {
		// A half written file from another editor shouldn't stop the watch.
		if err := list(); err != nil {
			logger.Warningf("could not list tasks: %s", err)
		}
	})
}
