package lib

import (
	"context"
	"fmt"
	"time"

	"github.com/slok/tasker/internal/app/tracker"
	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/conventions"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/storage"
	"github.com/slok/tasker/internal/storage/file"
	"github.com/slok/tasker/internal/storage/sqlite"
)

// StorageType identifies where the tasks are persisted.
type StorageType string

const (
	// StorageFile persists the tasks in a text file.
	StorageFile StorageType = "file"
	// StorageSQLite persists the tasks in a SQLite database.
	StorageSQLite StorageType = "sqlite"
)

// Config configures the SDK client.
//
// All fields are optional. An empty Config{} uses the tasks file of the
// current directory, the same as the CLI.
type Config struct {
	// Storage selects the storage backend.
	// Default: [StorageFile].
	Storage StorageType

	// TasksFile is the tasks file path used by [StorageFile].
	// Default: tasks.json.
	TasksFile string

	// DBPath is the SQLite database path used by [StorageSQLite].
	// Required when using [StorageSQLite].
	DBPath string

	// Now returns the current time, tasks timestamps have second precision.
	// Default: time.Now.
	Now func() time.Time

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Storage == "" {
		c.Storage = StorageFile
	}

	if c.Storage == StorageFile && c.TasksFile == "" {
		c.TasksFile = conventions.TasksFile
	}

	if c.Storage == StorageSQLite && c.DBPath == "" {
		return fmt.Errorf("db path is required: %w", ErrNotValid)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the SDK entry point to manage tasks.
//
// Create a Client with [New] and release its resources with [Client.Close].
type Client struct {
	svc     *tracker.Service
	logger  log.Logger
	closeFn func() error
}

// New creates a new SDK client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, closeFn, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, mapError(err)
	}

	var clk clock.Clock = clock.System
	if cfg.Now != nil {
		clk = clock.Func(func() clock.Timestamp { return clock.FromTime(cfg.Now()) })
	}

	svc, err := tracker.NewService(tracker.ServiceConfig{
		Repository: repo,
		Clock:      clk,
		Logger:     cfg.Logger,
	})
	if err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return &Client{
		svc:     svc,
		logger:  cfg.Logger,
		closeFn: closeFn,
	}, nil
}

// Close releases resources held by the client.
// After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

func newRepository(ctx context.Context, cfg Config) (storage.Repository, func() error, error) {
	switch cfg.Storage {
	case StorageFile:
		repo, err := file.NewRepository(file.RepositoryConfig{
			Path:   cfg.TasksFile,
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create repository: %w", err)
		}
		return repo, func() error { return nil }, nil
	case StorageSQLite:
		repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: cfg.DBPath,
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create repository: %w", err)
		}
		return repo, repo.Close, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage type: %s: %w", cfg.Storage, ErrNotValid)
}
