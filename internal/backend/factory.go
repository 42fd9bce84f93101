package backend

import (
	"fmt"

	"tracker/internal/log"
	"tracker/internal/storage"
)

// Factory creates repositories based on configuration.
type Factory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent("backend")}
}

// Create builds the repository for the configured backend type.
func (f *Factory) Create(cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("initialized sqlite backend", log.FieldPath, cfg.SQLitePath)
		return &Result{Repository: repo, Cleanup: repo.Close}, nil

	default:
		repo, err := storage.NewFileRepository(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		f.logger.Info("initialized file backend", log.FieldPath, cfg.DataFile)
		return &Result{Repository: repo, Cleanup: nil}, nil
	}
}
