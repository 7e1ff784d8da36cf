// Package rankadmin provides administrative one-shots over an open rankings
// database: per-contest statistics, integrity checking, and compaction.
// These back the maintenance tooling around the scraper and are not part of
// the normal ingest path.
package rankadmin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/contestarchive/rankdb/ranking"
)

// ContestStats summarizes the stored records for one contest.
type ContestStats struct {
	Contest   string
	Records   int
	FirstYear int
	LastYear  int
}

// Stats returns per-contest record counts and year spans, ordered by
// contest.
func Stats(ctx context.Context, db *sql.DB) ([]ContestStats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := db.QueryContext(ctx,
		`SELECT contest, COUNT(*), MIN(year), MAX(year) FROM rankings GROUP BY contest ORDER BY contest`)
	if err != nil {
		return nil, fmt.Errorf("rankadmin: stats: %w", err)
	}
	defer rows.Close()

	var out []ContestStats
	for rows.Next() {
		var cs ContestStats
		if err := rows.Scan(&cs.Contest, &cs.Records, &cs.FirstYear, &cs.LastYear); err != nil {
			return nil, fmt.Errorf("rankadmin: stats: %w", err)
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rankadmin: stats: %w", err)
	}
	return out, nil
}

// IntegrityCheck runs PRAGMA integrity_check and reports corruption as
// ranking.ErrStorageUnavailable.
func IntegrityCheck(ctx context.Context, db *sql.DB) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var result string
	if err := db.QueryRowContext(ctx, `PRAGMA integrity_check`).Scan(&result); err != nil {
		return fmt.Errorf("%w: integrity check: %v", ranking.ErrStorageUnavailable, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: integrity check: %s", ranking.ErrStorageUnavailable, result)
	}
	return nil
}

// Compact reclaims free pages after bulk deletes.
func Compact(ctx context.Context, db *sql.DB) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("rankadmin: vacuum: %w", err)
	}
	return nil
}
