package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/tasker/internal/app/tracker"
	"github.com/slok/tasker/internal/conventions"
	"github.com/slok/tasker/internal/log"
	"github.com/slok/tasker/internal/model"
	"github.com/slok/tasker/internal/printer"
	"github.com/slok/tasker/internal/storage"
	"github.com/slok/tasker/internal/storage/file"
	storageio "github.com/slok/tasker/internal/storage/io"
	"github.com/slok/tasker/internal/storage/sqlite"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string
	Storage    string
	TasksFile  string
	DBPath     string
	Format     string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	configSet    bool
	storageSet   bool
	tasksFileSet bool
	dbPathSet    bool
	formatSet    bool
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	home := homedir.HomeDir()
	app.Flag("config", "Path to the YAML config file.").Default(conventions.ConfigPath(home)).IsSetByUser(&c.configSet).StringVar(&c.ConfigPath)
	app.Flag("storage", "Selects the tasks storage backend.").Default(model.StorageFile).IsSetByUser(&c.storageSet).EnumVar(&c.Storage, model.StorageFile, model.StorageSQLite)
	app.Flag("tasks-file", "Path to the tasks file (file storage).").Default(conventions.TasksFile).IsSetByUser(&c.tasksFileSet).StringVar(&c.TasksFile)
	app.Flag("db-path", "Path to the SQLite database file (sqlite storage).").Default(conventions.DBPath(home)).IsSetByUser(&c.dbPathSet).StringVar(&c.DBPath)
	app.Flag("format", "Output format.").Default(model.FormatPlain).IsSetByUser(&c.formatSet).EnumVar(&c.Format, model.FormatPlain, model.FormatTable, model.FormatJSON)

	return c
}

// LoadConfig merges the config file into the global configuration. Flags set
// on the command line win over the file values. A missing config file is only
// an error when the config path was set explicitly.
func (r *RootCommand) LoadConfig(ctx context.Context) error {
	repo := storageio.NewConfigYAMLRepository(os.DirFS(filepath.Dir(r.ConfigPath)))
	fileCfg, err := repo.GetConfig(ctx, filepath.Base(r.ConfigPath))
	switch {
	case err == nil:
		r.logger().Debugf("config file %q loaded", r.ConfigPath)
	case errors.Is(err, fs.ErrNotExist) && !r.configSet:
		fileCfg = model.Config{}
	default:
		return fmt.Errorf("could not load config file %q: %w", r.ConfigPath, err)
	}

	if fileCfg.Storage != "" && !r.storageSet {
		r.Storage = fileCfg.Storage
	}
	if fileCfg.TasksFile != "" && !r.tasksFileSet {
		r.TasksFile = fileCfg.TasksFile
	}
	if fileCfg.DBPath != "" && !r.dbPathSet {
		r.DBPath = fileCfg.DBPath
	}
	if fileCfg.Format != "" && !r.formatSet {
		r.Format = fileCfg.Format
	}

	cfg := r.config()
	return cfg.Validate()
}

func (r *RootCommand) config() model.Config {
	return model.Config{
		Storage:   r.Storage,
		TasksFile: r.TasksFile,
		DBPath:    r.DBPath,
		Format:    r.Format,
	}
}

func (r *RootCommand) logger() log.Logger {
	if r.Logger == nil {
		return log.Noop
	}
	return r.Logger
}

// newRepository returns the configured tasks repository and a function to release it.
func (r *RootCommand) newRepository(ctx context.Context) (storage.Repository, func() error, error) {
	logger := r.logger()

	switch r.Storage {
	case model.StorageSQLite:
		repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: r.DBPath,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create sqlite repository: %w", err)
		}
		return repo, repo.Close, nil
	case model.StorageFile, "":
		repo, err := file.NewRepository(file.RepositoryConfig{
			Path:   r.TasksFile,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create file repository: %w", err)
		}
		return repo, func() error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage %q: %w", r.Storage, model.ErrNotValid)
}

func (r *RootCommand) newPrinter() printer.Printer {
	switch r.Format {
	case model.FormatJSON:
		return printer.NewJSONPrinter(r.Stdout)
	case model.FormatTable:
		return printer.NewTablePrinter(r.Stdout, nil)
	default:
		return printer.NewPlainPrinter(r.Stdout)
	}
}

// withService runs fn with a tracker service over the configured repository.
func (r *RootCommand) withService(ctx context.Context, fn func(svc *tracker.Service) error) (err error) {
	repo, release, err := r.newRepository(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := release(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close repository: %w", cerr)
		}
	}()

	svc, err := tracker.NewService(tracker.ServiceConfig{
		Repository: repo,
		Logger:     r.logger(),
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	return fn(svc)
}

// runTracker processes a single command and prints its outcome.
func (r *RootCommand) runTracker(ctx context.Context, cmd model.Command) error {
	return r.withService(ctx, func(svc *tracker.Service) error {
		out, err := svc.Run(ctx, cmd)
		if err != nil {
			return fmt.Errorf("could not run %s: %w", cmd.Kind, err)
		}

		if err := r.newPrinter().PrintOutcome(out); err != nil {
			return fmt.Errorf("could not print result: %w", err)
		}

		return nil
	})
}
