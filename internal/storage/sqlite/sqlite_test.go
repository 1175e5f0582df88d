package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/storage/sqlite"
)

var (
	t0 = clock.Timestamp{Year: 2024, Month: 2, Day: 29, Hour: 10}
	t1 = clock.Timestamp{Year: 2024, Month: 3, Day: 1, Hour: 8, Minute: 30, Second: 15}
)

func newRepo(t *testing.T, path string) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: path,
		Logger: log.Noop,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestNewRepositoryMissingPath(t *testing.T) {
	_, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{})
	assert.Error(t, err)
}

func TestRepositorySaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, filepath.Join(t.TempDir(), "test.db"))

	// Empty database.
	tasks, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Order is the sequence order, not the id order.
	exp := []model.Task{
		{ID: 5, Description: "last id first", Status: model.StatusDone, CreatedAt: t0, UpdatedAt: t1},
		{ID: 2, Description: `with "quotes"`, Status: model.StatusInProgress, CreatedAt: t0, UpdatedAt: t0},
		{ID: 3, Description: "degraded clock"},
	}
	require.NoError(t, repo.SaveTasks(ctx, exp))

	got, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, exp, got)

	// Saving replaces everything.
	exp = exp[1:2]
	require.NoError(t, repo.SaveTasks(ctx, exp))

	got, err = repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, exp, got)
}

func TestRepositoryPersistsBetweenConnections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	exp := []model.Task{{ID: 1, Description: "buy milk", CreatedAt: t0, UpdatedAt: t0}}
	repo := newRepo(t, path)
	require.NoError(t, repo.SaveTasks(ctx, exp))
	require.NoError(t, repo.Close())

	// Migrations should be idempotent.
	repo2 := newRepo(t, path)
	got, err := repo2.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, exp, got)
}

func TestRepositorySaveDuplicatedIDsFails(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, filepath.Join(t.TempDir(), "test.db"))

	exp := []model.Task{{ID: 1, Description: "a"}}
	require.NoError(t, repo.SaveTasks(ctx, exp))

	err := repo.SaveTasks(ctx, []model.Task{{ID: 7}, {ID: 7}})
	require.Error(t, err)

	// The failed save should be rolled back.
	got, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, exp, got)
}
