package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"tracker/internal/core"
)

// FileRepository keeps the record set as a JSON array in a single file,
// sorted by id so that saving an unmodified set reproduces the file
// byte for byte.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) (*FileRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) Load(_ context.Context) (map[string]core.Expense, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: nothing persisted yet.
			return map[string]core.Expense{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var items []core.Expense
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorrupt, r.path, err)
	}

	records := make(map[string]core.Expense, len(items))
	for _, e := range items {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: record without id in %s", ErrCorrupt, r.path)
		}
		if _, dup := records[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s in %s", ErrCorrupt, e.ID, r.path)
		}
		records[e.ID] = e
	}
	return records, nil
}

// Save writes the full set atomically: the JSON is written to a temporary
// sibling file first and renamed over the target, so a crash or concurrent
// reader never observes a half-written store.
func (r *FileRepository) Save(_ context.Context, records map[string]core.Expense) error {
	items := make([]core.Expense, 0, len(records))
	for _, e := range records {
		items = append(items, e)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode records: %v", ErrWrite, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod temp file: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ErrWrite, r.path, err)
	}
	return nil
}

func (r *FileRepository) Close() error {
	return nil
}
