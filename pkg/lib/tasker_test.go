package lib_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasker/pkg/lib"
)

var (
	t0 = time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 2, 29, 11, 0, 0, 0, time.UTC)
)

// newTestClient creates a client with a temp tasks file and a settable clock.
func newTestClient(t *testing.T, now *time.Time) *lib.Client {
	t.Helper()

	client, err := lib.New(context.Background(), lib.Config{
		TasksFile: filepath.Join(t.TempDir(), "tasks.json"),
		Now:       func() time.Time { return *now },
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		cfg    lib.Config
		expErr error
	}{
		"A default config should work.": {
			cfg: lib.Config{},
		},
		"SQLite storage with a DB path should work.": {
			cfg: lib.Config{Storage: lib.StorageSQLite, DBPath: "tasks.db"},
		},
		"SQLite storage without DB path should fail.": {
			cfg:    lib.Config{Storage: lib.StorageSQLite},
			expErr: lib.ErrNotValid,
		},
		"An unknown storage should fail.": {
			cfg:    lib.Config{Storage: "s3"},
			expErr: lib.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			wd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(t.TempDir()))
			t.Cleanup(func() { _ = os.Chdir(wd) })

			client, err := lib.New(context.Background(), test.cfg)

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, client.Close())
		})
	}
}

func TestTaskLifecycle(t *testing.T) {
	now := t0
	client := newTestClient(t, &now)
	ctx := context.Background()

	task, err := client.AddTask(ctx, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, lib.Task{ID: 1, Description: "buy milk", Status: lib.TaskStatusTodo, CreatedAt: t0, UpdatedAt: t0}, *task)

	_, err = client.AddTask(ctx, "call mom")
	require.NoError(t, err)

	now = t1
	task, err = client.MarkTask(ctx, 1, lib.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, lib.TaskStatusDone, task.Status)
	assert.Equal(t, t0, task.CreatedAt)
	assert.Equal(t, t1, task.UpdatedAt)

	task, err = client.UpdateTask(ctx, 2, "call dad")
	require.NoError(t, err)
	assert.Equal(t, "call dad", task.Description)

	done := lib.TaskStatusDone
	tasks, err := client.ListTasks(ctx, &lib.ListTasksOpts{Status: &done})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, uint64(1), tasks[0].ID)

	require.NoError(t, client.DeleteTask(ctx, 1))

	tasks, err = client.ListTasks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "call dad", tasks[0].Description)
}

func TestTaskErrors(t *testing.T) {
	tests := map[string]struct {
		run    func(ctx context.Context, c *lib.Client) error
		expErr error
	}{
		"Updating a missing task should fail with not found.": {
			run: func(ctx context.Context, c *lib.Client) error {
				_, err := c.UpdateTask(ctx, 9, "x")
				return err
			},
			expErr: lib.ErrNotFound,
		},
		"Deleting a missing task should fail with not found.": {
			run: func(ctx context.Context, c *lib.Client) error {
				return c.DeleteTask(ctx, 9)
			},
			expErr: lib.ErrNotFound,
		},
		"Marking a missing task should fail with not found.": {
			run: func(ctx context.Context, c *lib.Client) error {
				_, err := c.MarkTask(ctx, 9, lib.TaskStatusDone)
				return err
			},
			expErr: lib.ErrNotFound,
		},
		"Marking with an unknown status should fail with not valid.": {
			run: func(ctx context.Context, c *lib.Client) error {
				_, err := c.MarkTask(ctx, 1, "blocked")
				return err
			},
			expErr: lib.ErrNotValid,
		},
		"Listing with an unknown status should fail with not valid.": {
			run: func(ctx context.Context, c *lib.Client) error {
				s := lib.TaskStatus("blocked")
				_, err := c.ListTasks(ctx, &lib.ListTasksOpts{Status: &s})
				return err
			},
			expErr: lib.ErrNotValid,
		},
		"Importing tasks with an unknown status should fail with not valid.": {
			run: func(ctx context.Context, c *lib.Client) error {
				_, err := c.Import(ctx, "[\n  {\n    \"status\" : \"blocked\"\n  }\n]\n")
				return err
			},
			expErr: lib.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			now := t0
			client := newTestClient(t, &now)
			ctx := context.Background()

			_, err := client.AddTask(ctx, "buy milk")
			require.NoError(t, err)

			err = test.run(ctx, client)
			assert.ErrorIs(t, err, test.expErr)
		})
	}
}

func TestExportImport(t *testing.T) {
	now := t0
	ctx := context.Background()
	src := newTestClient(t, &now)

	_, err := src.AddTask(ctx, `say "hi"`)
	require.NoError(t, err)
	_, err = src.AddTask(ctx, "walk dog")
	require.NoError(t, err)

	text, err := src.Export(ctx)
	require.NoError(t, err)

	dst, err := lib.New(ctx, lib.Config{
		Storage: lib.StorageSQLite,
		DBPath:  filepath.Join(t.TempDir(), "tasks.db"),
	})
	require.NoError(t, err)
	defer dst.Close()

	imported, err := dst.Import(ctx, text)
	require.NoError(t, err)
	assert.Len(t, imported, 2)

	got, err := dst.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestClientSharesTasksFileWithCLIFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	client, err := lib.New(context.Background(), lib.Config{
		TasksFile: path,
		Now:       func() time.Time { return t0 },
	})
	require.NoError(t, err)
	defer client.Close()

	_, err = client.AddTask(context.Background(), "buy milk")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	exp := `[
  {
    "id" : 1,
    "description" : "buy milk",
    "status" : "todo",
    "createdAt" : "2024-02-29T10:00:00Z",
    "updatedAt" : "2024-02-29T10:00:00Z"
  }
]
`
	assert.Equal(t, exp, string(data))
}
