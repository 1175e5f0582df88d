package file

import (
	"context"
	"fmt"

	"github.com/slok/tasker/internal/codec"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
	utilfile "github.com/slok/tasker/internal/utils/file"
)

// RepositoryConfig is the configuration for the file repository.
type RepositoryConfig struct {
	Path   string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File"})
	return nil
}

// Repository persists the tasks in a text file using the task codec.
type Repository struct {
	path   string
	logger log.Logger
}

// NewRepository creates a new file repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{path: cfg.Path, logger: cfg.Logger}, nil
}

// LoadText returns the raw persisted text, the file is created empty if missing.
func (r *Repository) LoadText(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	text, err := utilfile.ReadOrCreate(r.path)
	if err != nil {
		return "", fmt.Errorf("could not read tasks file: %w", err)
	}

	return text, nil
}

// SaveText replaces the raw persisted text.
func (r *Repository) SaveText(ctx context.Context, text string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := utilfile.WriteAtomic(r.path, []byte(text)); err != nil {
		return fmt.Errorf("could not write tasks file: %w", err)
	}

	return nil
}

// LoadTasks satisfies storage.Repository.
func (r *Repository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	text, err := r.LoadText(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("could not decode tasks file %s: %w", r.path, err)
	}

	r.logger.Debugf("Loaded %d tasks from %s", len(tasks), r.path)
	return tasks, nil
}

// SaveTasks satisfies storage.Repository.
func (r *Repository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if err := r.SaveText(ctx, codec.Encode(tasks)); err != nil {
		return err
	}

	r.logger.Debugf("Saved %d tasks to %s", len(tasks), r.path)
	return nil
}
