// Package backend selects and builds the storage backend from
// configuration.
package backend

import (
	"tracker/internal/config"
	"tracker/internal/storage"
)

// Type identifies a storage backend implementation.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Result contains the repository and an optional cleanup function.
type Result struct {
	Repository storage.Repository
	Cleanup    func() error
}

// Config holds what the factory needs to build a repository.
type Config struct {
	Type       Type
	DataFile   string
	SQLitePath string
}

// FromAppConfig converts the application config to a backend config.
func FromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:       Type(appConfig.Backend),
		DataFile:   appConfig.DataFile,
		SQLitePath: appConfig.SQLitePath,
	}
}
