package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasker/internal/utils/file"
)

func TestReadOrCreate(t *testing.T) {
	tests := map[string]struct {
		setup      func(t *testing.T, path string)
		expContent string
	}{
		"A missing file should be created empty": {
			setup:      func(t *testing.T, path string) {},
			expContent: "",
		},
		"An existing file should be read": {
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
			},
			expContent: "test",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "tasks.json")
			test.setup(t, path)

			content, err := file.ReadOrCreate(path)
			require.NoError(t, err)
			assert.Equal(t, test.expContent, content)

			_, err = os.Stat(path)
			assert.NoError(t, err)
		})
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")

	require.NoError(t, file.WriteAtomic(path, []byte("first")))
	require.NoError(t, file.WriteAtomic(path, []byte("second")))

	content, err := file.ReadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "second", content)

	// No temporary files should be left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
