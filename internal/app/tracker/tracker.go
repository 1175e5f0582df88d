// Package tracker runs a single tracker invocation: it loads the tasks,
// applies one command and persists the result.
package tracker

import (
	"context"
	"fmt"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/storage"
	"github.com/slok/tasker/internal/store"
)

// ServiceConfig is the configuration for the tracker service.
type ServiceConfig struct {
	Repository storage.Repository
	Clock      clock.Clock
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Clock == nil {
		c.Clock = clock.System
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service applies commands over the persisted tasks.
type Service struct {
	repo   storage.Repository
	clock  clock.Clock
	logger log.Logger
}

// NewService creates a new tracker service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}, nil
}

// Run loads the tasks, processes the command and saves the tasks back if the
// command changed them. Read only commands (list and none) and commands on
// missing tasks don't write.
//
// If the persisted tasks can't be loaded nothing is processed.
func (s *Service) Run(ctx context.Context, cmd model.Command) (model.Outcome, error) {
	logger := s.logger.WithCtxValues(ctx).WithValues(log.Kv{"command": cmd.Kind.String()})
	logger.Debugf("processing command")

	st, err := s.load(ctx)
	if err != nil {
		return model.Outcome{}, err
	}

	out := st.Process(cmd)
	if out.Kind == model.OutcomeRejected {
		return model.Outcome{}, fmt.Errorf("could not process command: %w", out.Err)
	}
	if out.Kind == model.OutcomeNotFound {
		logger.Warningf("task %d does not exist", out.ID)
	}

	if !out.Mutated() {
		logger.Debugf("tasks not changed, skipping save")
		return out, nil
	}

	if err := s.repo.SaveTasks(ctx, st.Tasks()); err != nil {
		return model.Outcome{}, fmt.Errorf("could not save tasks: %w", err)
	}

	logger.Infof("tasks saved")
	return out, nil
}

// Export returns the persisted text form of the stored tasks.
func (s *Service) Export(ctx context.Context) (string, error) {
	st, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	return st.Save(), nil
}

// Import replaces all the stored tasks with the ones on the persisted text form.
// It returns the imported tasks.
func (s *Service) Import(ctx context.Context, text string) ([]model.Task, error) {
	st, err := store.Load(s.storeConfig(), text)
	if err != nil {
		return nil, fmt.Errorf("could not load imported tasks: %w", err)
	}

	tasks := st.Tasks()
	if err := s.repo.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Infof("imported %d tasks", len(tasks))
	return tasks, nil
}

func (s *Service) load(ctx context.Context) (*store.Store, error) {
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	st, err := store.New(s.storeConfig(), tasks)
	if err != nil {
		return nil, fmt.Errorf("could not create store: %w", err)
	}

	return st, nil
}

func (s *Service) storeConfig() store.Config {
	return store.Config{Clock: s.clock, Logger: s.logger}
}
