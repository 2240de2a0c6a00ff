package engine

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the engine's logger instance.
// It is a no-op logger until SetLogger installs a real one.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger configures the engine's logger. Passing nil restores the
// no-op logger. Safe to call concurrently with conversions.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
