package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default tasker data directory name (relative to home).
	DefaultDataDir = ".tasker"
	// ConfigFile is the config filename inside the data directory.
	ConfigFile = "config.yaml"
	// DBFile is the SQLite database filename inside the data directory.
	DBFile = "tasker.db"

	// TasksFile is the default tasks file, relative to the working directory.
	TasksFile = "tasks.json"
)

// DataDir returns the tasker data directory for a home directory.
func DataDir(home string) string {
	return filepath.Join(home, DefaultDataDir)
}

// ConfigPath returns the default config file path for a home directory.
func ConfigPath(home string) string {
	return filepath.Join(DataDir(home), ConfigFile)
}

// DBPath returns the default SQLite database path for a home directory.
func DBPath(home string) string {
	return filepath.Join(DataDir(home), DBFile)
}
