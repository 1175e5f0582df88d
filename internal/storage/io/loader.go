package io

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/slok/tasker/internal/model"
)

// ConfigYAMLRepository loads the application configuration from YAML files.
type ConfigYAMLRepository struct {
	fs fs.FS
}

// NewConfigYAMLRepository creates a new YAML config repository.
func NewConfigYAMLRepository(filesystem fs.FS) *ConfigYAMLRepository {
	return &ConfigYAMLRepository{fs: filesystem}
}

// GetConfig loads the configuration from a YAML file. Environment variables
// in the file are expanded. Only the keys present on the file are set on the
// returned config.
func (r *ConfigYAMLRepository) GetConfig(ctx context.Context, path string) (model.Config, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Config{}, ctx.Err()
	}

	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return model.Config{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// Config represents the YAML structure for the application configuration.
type Config struct {
	Storage   string `yaml:"storage"`
	TasksFile string `yaml:"tasks_file"`
	DBPath    string `yaml:"db_path"`
	Format    string `yaml:"format"`
}

func (c Config) validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Storage, validation.In(model.StorageFile, model.StorageSQLite)),
		validation.Field(&c.Format, validation.In(model.FormatPlain, model.FormatTable, model.FormatJSON)),
	)
}

func (c Config) toModel() model.Config {
	return model.Config{
		Storage:   c.Storage,
		TasksFile: c.TasksFile,
		DBPath:    c.DBPath,
		Format:    c.Format,
	}
}
