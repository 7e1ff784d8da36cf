package session

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// log holds the package logger. Library code stays silent unless the host
// application installs a logger via SetLogger.
var log atomic.Pointer[zap.Logger]

// SetLogger installs the logger used for session lifecycle events. Passing
// nil restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	log.Store(l)
}

func logger() *zap.Logger {
	if l := log.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}
