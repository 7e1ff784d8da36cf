package ranking

import (
	"database/sql"
)

// rankingsSchema is the public storage contract: consumers written against
// the file directly depend on this exact table and column shape. The contest
// and univ columns are deliberately typeless so any text identifier is
// accepted as-is, without length limits or normalization.
const rankingsSchema = `
CREATE TABLE IF NOT EXISTS rankings (
    contest NOT NULL,
    year INTEGER NOT NULL,
    rank INTEGER NOT NULL,
    univ NOT NULL,
    score INTEGER NOT NULL,
    penalty INTEGER,
    PRIMARY KEY (contest, year, univ)
);
`

// EnsureSchema creates the rankings table in the provided database if it
// does not already exist. It is idempotent: invoking it against an
// already-initialized store is a no-op and never errors.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(rankingsSchema)
	return err
}
