// Package storage persists the full expense record set behind a small
// repository contract. Every mutation is a whole-set read-modify-write;
// there is no partial or streaming I/O.
package storage

import (
	"context"
	"errors"

	"tracker/internal/core"
)

var (
	// ErrCorrupt marks a backing store that exists but cannot be decoded.
	// Callers must surface it instead of silently discarding data.
	ErrCorrupt = errors.New("corrupt expense store")

	// ErrWrite marks an I/O failure while persisting. The previously
	// persisted set is guaranteed intact when this is returned.
	ErrWrite = errors.New("cannot write expense store")
)

// Repository stores the complete mapping of expense id to record.
// Load on a store that does not exist yet returns an empty mapping.
type Repository interface {
	Load(ctx context.Context) (map[string]core.Expense, error)
	Save(ctx context.Context, records map[string]core.Expense) error
	Close() error
}
