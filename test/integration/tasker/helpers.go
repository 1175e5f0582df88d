package tasker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/slok/tasker/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "tasker"
	}

	// If relative, the caller should pass an absolute path via the env var,
	// because go test changes the CWD to the test package directory.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("TASKER_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("tasker binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TASKER_INTEGRATION"
		envBinary     = "TASKER_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// Env returns the env to isolate a test run: a temp home so no user config is
// loaded and the tasks file to use.
func Env(t *testing.T, tasksFile string) []string {
	t.Helper()
	return []string{
		"HOME=" + t.TempDir(),
		"TASKER_TASKS_FILE=" + tasksFile,
	}
}

// Run runs a tasker command.
func Run(ctx context.Context, config Config, env []string, args ...string) (stdout, stderr []byte, err error) {
	return testutils.RunTasker(ctx, env, config.Binary, args, "", true)
}

// RunStdin runs a tasker command with standard input.
func RunStdin(ctx context.Context, config Config, env []string, stdin string, args ...string) (stdout, stderr []byte, err error) {
	return testutils.RunTasker(ctx, env, config.Binary, args, stdin, true)
}
