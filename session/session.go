package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/contestarchive/rankdb/engine"
	"github.com/contestarchive/rankdb/ranking"
)

// storageFile is the well-known name of the persistent store, created next
// to the running executable on first use.
const storageFile = "rankings.sqlite"

// storagePath resolves the fixed on-disk location once per process. The
// location is derived from the executable's own directory and is not
// configurable.
var storagePath = sync.OnceValues(func() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), storageFile), nil
})

// Session owns an open database handle with the rankings schema guaranteed.
type Session struct {
	db    *sql.DB
	store *ranking.SQLiteStore
}

// Open opens a session in one of two modes. With ephemeral true the backing
// store is a transient in-memory database private to this session; with
// ephemeral false it is the fixed file next to the executable, created on
// first use and shared across process restarts.
//
// The rankings schema is guaranteed to exist before Open returns. On any
// failure no handle is exposed and the error wraps
// ranking.ErrStorageUnavailable.
func Open(ephemeral bool) (*Session, error) {
	dsn := engine.MemoryDSN()
	if !ephemeral {
		path, err := storagePath()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve storage path: %v", ranking.ErrStorageUnavailable, err)
		}
		dsn = engine.FileDSN(path)
	}

	s, err := openDSN(dsn)
	if err != nil {
		return nil, err
	}
	logger().Debug("session opened", zap.Bool("ephemeral", ephemeral))
	return s, nil
}

// With opens a session, passes its store to fn, and releases the handle when
// fn returns - on normal completion, on error, and on panic alike.
func With(ephemeral bool, fn func(store *ranking.SQLiteStore) error) error {
	s, err := Open(ephemeral)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s.Store())
}

// openDSN opens and initializes a session against an explicit DSN. Tests use
// it directly to exercise persistence against a scratch file.
func openDSN(dsn string) (*Session, error) {
	db, err := engine.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ranking.ErrStorageUnavailable, err)
	}
	store, err := ranking.NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Session{db: db, store: store}, nil
}

// DB exposes the raw handle for ad-hoc SQL against the rankings table.
func (s *Session) DB() *sql.DB {
	return s.db
}

// Store returns the typed ranking store bound to this session.
func (s *Session) Store() *ranking.SQLiteStore {
	return s.store
}

// Close releases the underlying connection. It is safe to call more than
// once.
func (s *Session) Close() error {
	err := s.db.Close()
	logger().Debug("session closed", zap.Error(err))
	return err
}
