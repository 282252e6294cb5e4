package bitfield

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the bitfield package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the bitfield package's logger. Only Compile logs,
// so to observe package-level MustCompile layouts this has to run before
// their initializers, e.g. from an init function in the importing package.
// Accessors never log.
func SetLogger(l *zap.Logger) {
	logger = l
}
