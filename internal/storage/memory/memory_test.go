package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/storage/memory"
)

func TestRepository(t *testing.T) {
	tests := map[string]struct {
		actions func(ctx context.Context, t *testing.T, repo *memory.Repository)
	}{
		"Loading an empty repository should return no tasks": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				tasks, err := repo.LoadTasks(ctx)
				require.NoError(t, err)
				assert.Empty(t, tasks)
				assert.Equal(t, 0, repo.Saves())
			},
		},

		"Saved tasks should be loaded in order": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				tasks := []model.Task{{ID: 3, Description: "c"}, {ID: 1, Description: "a"}}
				require.NoError(t, repo.SaveTasks(ctx, tasks))

				got, err := repo.LoadTasks(ctx)
				require.NoError(t, err)
				assert.Equal(t, tasks, got)
				assert.Equal(t, 1, repo.Saves())
			},
		},

		"Mutating loaded tasks should not change the stored ones": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				require.NoError(t, repo.SaveTasks(ctx, []model.Task{{ID: 1, Description: "a"}}))

				got, err := repo.LoadTasks(ctx)
				require.NoError(t, err)
				got[0].Description = "changed"

				again, err := repo.LoadTasks(ctx)
				require.NoError(t, err)
				assert.Equal(t, "a", again[0].Description)
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: log.Noop})
			require.NoError(t, err)

			test.actions(context.Background(), t, repo)
		})
	}
}

func TestRepositoryInitialTasks(t *testing.T) {
	initial := []model.Task{{ID: 1, Description: "a"}}
	repo, err := memory.NewRepository(memory.RepositoryConfig{Tasks: initial})
	require.NoError(t, err)

	got, err := repo.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, initial, got)
}
