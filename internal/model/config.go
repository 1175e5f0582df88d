package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Storage backend types.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Output formats.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config is the application configuration that can be set from a config file.
type Config struct {
	Storage   string
	TasksFile string
	DBPath    string
	Format    string
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Storage, validation.Required, validation.In(StorageFile, StorageSQLite)),
		validation.Field(&c.TasksFile, validation.When(c.Storage == StorageFile, validation.Required)),
		validation.Field(&c.DBPath, validation.When(c.Storage == StorageSQLite, validation.Required)),
		validation.Field(&c.Format, validation.In(FormatPlain, FormatTable, FormatJSON)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotValid, err)
	}
	return nil
}
