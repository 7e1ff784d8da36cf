package engine

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver and
// verifies the connection with a ping.
//
// The pool is pinned to a single connection. An in-memory database lives on
// its connection, so the pin keeps its contents alive for the lifetime of
// the returned handle; for file databases it keeps a single writer, which is
// the only supported write model in this module.
//
// For file-based databases, build the DSN with FileDSN. For in-memory
// databases, use MemoryDSN.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("engine: open %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("engine: ping %q: %w", dsn, err)
	}
	return db, nil
}

// FileDSN returns the DSN for a file-backed database at path with the
// standing pragmas applied: WAL journaling, a 5s busy timeout, and NORMAL
// synchronous mode. The pragmas use the modernc _pragma syntax; mattn-style
// keys like _journal_mode are silently ignored by this driver.
func FileDSN(path string) string {
	return filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// MemoryDSN returns the DSN for a transient in-memory database. Each handle
// opened with it is private: two handles never observe each other's data.
func MemoryDSN() string {
	return ":memory:"
}
