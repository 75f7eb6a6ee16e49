package engine

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
	loggerMu   sync.RWMutex
)

// Logger returns the engine's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		loggerMu.Lock()
		if logger == nil {
			logger = zap.NewNop()
		}
		loggerMu.Unlock()
	})
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// debugf is a no-op debug helper. Enable by setting debug = true.
var debug = false

func debugf(format string, args ...any) {
	if debug {
		Logger().Sugar().Debugf(format, args...)
	}
}
