package ranking

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/contestarchive/rankdb/engine"
)

// TestNotNullViolation verifies that inserting NULL into any NOT NULL column
// is classified as a constraint violation, while an omitted penalty is not.
func TestNotNullViolation(t *testing.T) {
	store := newTestStore(t)
	db := store.DB()

	columns := []string{"contest", "year", "rank", "univ", "score"}
	for _, col := range columns {
		stmt := `INSERT INTO rankings(contest, year, rank, univ, score) VALUES(?, ?, ?, ?, ?)`
		args := []any{"ICPC", 2023, 1, col, 500} // univ varies so only the NULL can collide
		for i, c := range columns {
			if c == col {
				args[i] = nil
			}
		}
		_, err := db.Exec(stmt, args...)
		if err == nil {
			t.Fatalf("insert with NULL %s succeeded, want constraint violation", col)
		}
		if !IsConstraintViolation(err) {
			t.Errorf("NULL %s: IsConstraintViolation(%v) = false, want true", col, err)
		}
	}

	// Omitting penalty must succeed.
	if err := store.Insert(context.Background(), Record{Contest: "ICPC", Year: 2023, Rank: 1, Univ: "MIT", Score: 500}); err != nil {
		t.Fatalf("insert without penalty failed: %v", err)
	}
}

func TestIsConstraintViolation(t *testing.T) {
	if IsConstraintViolation(nil) {
		t.Error("IsConstraintViolation(nil) = true, want false")
	}
	if IsConstraintViolation(errors.New("disk I/O error")) {
		t.Error("expected false for unrelated error")
	}
	if !IsConstraintViolation(errors.New("UNIQUE constraint failed: rankings.contest")) {
		t.Error("expected true for unique constraint message")
	}
	if !IsConstraintViolation(ErrConstraintViolation) {
		t.Error("expected true for the sentinel itself")
	}
}

// TestEnsureSchemaReadOnly verifies that schema creation against a store
// that cannot be written surfaces an error instead of a handle. An empty
// file opened with immutable=1 is a valid database that rejects all writes.
func TestEnsureSchemaReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.sqlite")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("create empty database file: %v", err)
	}

	db, err := engine.Open("file:" + path + "?immutable=1")
	if err != nil {
		t.Fatalf("engine.Open failed: %v", err)
	}
	defer db.Close()

	if _, err := NewSQLiteStore(db); err == nil {
		t.Fatalf("NewSQLiteStore on read-only database succeeded, want error")
	} else if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("NewSQLiteStore returned %v, want ErrStorageUnavailable", err)
	}
}
