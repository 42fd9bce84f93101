package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tracker/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository satisfies the same whole-set contract as FileRepository
// on an embedded database. Save replaces the full set in one transaction,
// which gives the same atomicity guarantee as the file rename.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (map[string]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, category, amount, currency, note FROM expenses`)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	records := make(map[string]core.Expense)
	for rows.Next() {
		var (
			e       core.Expense
			rawDate string
		)
		if err := rows.Scan(&e.ID, &rawDate, &e.Category, &e.Amount, &e.Currency, &e.Note); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		date, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q for id %s", ErrCorrupt, rawDate, e.ID)
		}
		e.Date = date
		records[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return records, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, records map[string]core.Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", ErrWrite, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("%w: clear expenses: %v", ErrWrite, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (id, date, category, amount, currency, note) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %v", ErrWrite, err)
	}
	defer stmt.Close()

	for _, e := range records {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Date.String(), e.Category, e.Amount, e.Currency, e.Note); err != nil {
			return fmt.Errorf("%w: insert expense %s: %v", ErrWrite, e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrWrite, err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
