package ranking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore is the SQLite-backed implementation of Store. Records are
// write-once: they are never mutated in place, and a duplicate key insert is
// rejected rather than overwriting the existing row.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the rankings
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("ranking: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("%w: ensure schema: %v", ErrStorageUnavailable, err)
	}
	return &SQLiteStore{db: db}, nil
}

// DB exposes the underlying handle for callers that need ad-hoc SQL beyond
// the typed operations, e.g. reporting queries.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

const insertSQL = `INSERT INTO rankings(contest, year, rank, univ, score, penalty) VALUES(?, ?, ?, ?, ?, ?)`

// Insert persists a single ranking record.
func (s *SQLiteStore) Insert(ctx context.Context, rec Record) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := s.db.ExecContext(ctx, insertSQL,
		rec.Contest, rec.Year, rec.Rank, rec.Univ, rec.Score, penaltyValue(rec.Penalty)); err != nil {
		return insertError(rec, err)
	}
	return nil
}

// InsertBatch persists records inside a single transaction so that a failure
// on any record leaves the store unchanged.
func (s *SQLiteStore) InsertBatch(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ranking: begin insert batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("ranking: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range recs {
		if _, err := stmt.ExecContext(ctx,
			rec.Contest, rec.Year, rec.Rank, rec.Univ, rec.Score, penaltyValue(rec.Penalty)); err != nil {
			return insertError(rec, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ranking: commit insert batch: %w", err)
	}
	return nil
}

// Get looks up a record by its (contest, year, univ) key.
func (s *SQLiteStore) Get(ctx context.Context, contest string, year int, univ string) (Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT contest, year, rank, univ, score, penalty FROM rankings WHERE contest = ? AND year = ? AND univ = ?`,
		contest, year, univ)
	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s/%d/%s", ErrNotFound, contest, year, univ)
	}
	if err != nil {
		return Record{}, fmt.Errorf("ranking: get record: %w", err)
	}
	return rec, nil
}

// ListContestYear returns every record for one contest-year ordered by rank.
func (s *SQLiteStore) ListContestYear(ctx context.Context, contest string, year int) ([]Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT contest, year, rank, univ, score, penalty FROM rankings WHERE contest = ? AND year = ? ORDER BY rank`,
		contest, year)
	if err != nil {
		return nil, fmt.Errorf("ranking: list contest year: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("ranking: list contest year: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ranking: list contest year: %w", err)
	}
	return out, nil
}

func scanRecord(scan func(dest ...any) error) (Record, error) {
	var rec Record
	var penalty sql.NullInt64
	if err := scan(&rec.Contest, &rec.Year, &rec.Rank, &rec.Univ, &rec.Score, &penalty); err != nil {
		return Record{}, err
	}
	if penalty.Valid {
		rec.Penalty = &penalty.Int64
	}
	return rec, nil
}

func penaltyValue(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func insertError(rec Record, err error) error {
	if IsConstraintViolation(err) {
		return fmt.Errorf("%w: insert %s/%d/%s: %v", ErrConstraintViolation, rec.Contest, rec.Year, rec.Univ, err)
	}
	return fmt.Errorf("ranking: insert %s/%d/%s: %w", rec.Contest, rec.Year, rec.Univ, err)
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
