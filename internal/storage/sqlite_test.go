package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	records, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load on fresh db: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty set, got %d records", len(records))
	}

	want := testRecords()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSQLiteRepositorySaveReplacesSet(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	records := testRecords()
	if err := repo.Save(ctx, records); err != nil {
		t.Fatalf("Save: %v", err)
	}

	delete(records, "EXP-20260116-0001")
	if err := repo.Save(ctx, records); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record after delete, got %d", len(got))
	}
	if _, ok := got["EXP-20260115-0001"]; !ok {
		t.Fatal("surviving record missing")
	}
}
