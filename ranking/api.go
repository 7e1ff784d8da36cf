package ranking

import (
	"context"
)

// Record represents one institution's result in a single contest-year. It
// maps one-to-one onto a row of the rankings table.
type Record struct {
	// Contest identifies the contest/ranking source, e.g. "ICPC". Free-form
	// text; the schema does not constrain length or case.
	Contest string

	// Year is the year the ranking applies to.
	Year int

	// Rank is the position within that contest and year.
	Rank int

	// Univ identifies the ranked institution. Free-form text, like Contest.
	Univ string

	// Score is the integer score associated with the rank.
	Score int

	// Penalty is the optional penalty applied to the score. A nil Penalty is
	// stored as SQL NULL.
	Penalty *int64
}

// Key returns the identifying triple of the record. At most one row may
// exist per key; a second insert with the same key is rejected with
// ErrConstraintViolation.
func (r Record) Key() (contest string, year int, univ string) {
	return r.Contest, r.Year, r.Univ
}

// Store defines the ranking storage API. The SQLite implementation in this
// package is the only one; scrapers insert records through it and reporting
// tools read them back.
type Store interface {
	// Insert persists a single record. A duplicate (contest, year, univ) key
	// or a NULL value in a NOT NULL column fails with ErrConstraintViolation
	// and leaves existing rows untouched.
	Insert(ctx context.Context, rec Record) error

	// InsertBatch persists records atomically: either every record is
	// committed or none is.
	InsertBatch(ctx context.Context, recs []Record) error

	// Get looks up a record by its identifying triple. It returns
	// ErrNotFound when no row matches.
	Get(ctx context.Context, contest string, year int, univ string) (Record, error)

	// ListContestYear returns all records for one contest-year ordered by
	// rank.
	ListContestYear(ctx context.Context, contest string, year int) ([]Record, error)
}
