package loader

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the loader's logger instance, shared by all backends.
// It uses a no-op logger by default; the keybridge binary never enables it
// because its contract allows a single diagnostic line on stderr.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the loader's logger.
// This must be called before any loader operations.
func SetLogger(l *zap.Logger) {
	logger = l
}
