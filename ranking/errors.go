package ranking

import (
	"errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	// ErrStorageUnavailable reports that the backing store could not be
	// opened or initialized (I/O failure, permissions, corruption).
	ErrStorageUnavailable = errors.New("ranking: storage unavailable")

	// ErrConstraintViolation reports a rejected write: a duplicate
	// (contest, year, univ) key or a NULL value in a NOT NULL column.
	ErrConstraintViolation = errors.New("ranking: constraint violation")

	// ErrNotFound reports that no record matches the requested key.
	ErrNotFound = errors.New("ranking: record not found")
)

// IsConstraintViolation reports whether err is a SQLite constraint failure:
// primary key or unique collision, or a NOT NULL violation.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConstraintViolation) {
		return true
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT,
			sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY,
			sqlite3lib.SQLITE_CONSTRAINT_UNIQUE,
			sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "constraint failed")
}
