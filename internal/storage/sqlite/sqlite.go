package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	version, err := migrator.Version(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	cfg.Logger.Debugf("SQLite repository initialized at %s with schema version %d", cfg.DBPath, version)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// LoadTasks returns all the tasks in their stored order.
func (r *Repository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	query := `
		SELECT id, description, status, created_at, updated_at
		FROM tasks
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	r.logger.Debugf("Loaded %d tasks from repository", len(tasks))
	return tasks, nil
}

// SaveTasks replaces all the stored tasks in a single transaction.
func (r *Repository) SaveTasks(ctx context.Context, tasks []model.Task) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("could not delete tasks: %w", err)
	}

	query := `
		INSERT INTO tasks (id, position, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("could not prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		if t.ID > math.MaxInt64 {
			return fmt.Errorf("task id %d too big: %w", t.ID, model.ErrNotValid)
		}

		_, err := stmt.ExecContext(ctx,
			int64(t.ID),
			i,
			t.Description,
			t.Status.String(),
			t.CreatedAt.String(),
			t.UpdatedAt.String(),
		)
		if err != nil {
			return fmt.Errorf("could not insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Saved %d tasks in repository", len(tasks))
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanRow(s scanner) (model.Task, error) {
	var (
		id                   int64
		status               string
		createdAt, updatedAt string
		task                 model.Task
	)

	err := s.Scan(&id, &task.Description, &status, &createdAt, &updatedAt)
	if err != nil {
		return model.Task{}, err
	}

	task.ID = uint64(id)
	if task.Status, err = model.ParseStatus(status); err != nil {
		return model.Task{}, err
	}
	if task.CreatedAt, err = clock.Parse(createdAt); err != nil {
		return model.Task{}, fmt.Errorf("invalid created_at: %w", err)
	}
	if task.UpdatedAt, err = clock.Parse(updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("invalid updated_at: %w", err)
	}

	return task, nil
}
