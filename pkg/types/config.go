// Package types defines the configuration entity types and standard errors
// shared by the mgmt store and CLI.
package types

import (
	"errors"
	"strings"
)

// Config holds store location parameters for store.Open.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	Database string `json:"database" yaml:"database"`
}

// DefaultDatabase is the database file name used when Config.Database is empty.
const DefaultDatabase = "mgmt.db"

// Config validation errors.
var (
	ErrDatabaseName = errors.New("database must be a bare file name")
)

// Validate checks that the Config is well-formed. The database name must not
// contain path separators; it is always joined to DataDir.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Database, `/\`) {
		return ErrDatabaseName
	}
	return nil
}

// DatabaseName returns the configured database file name, falling back to
// DefaultDatabase when unset.
func (c Config) DatabaseName() string {
	if c.Database == "" {
		return DefaultDatabase
	}
	return c.Database
}
