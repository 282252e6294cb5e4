package csr

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the csr package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the csr package's logger. Only New logs, once per
// table build; set it before constructing tables, keeping in mind that
// MustNew tables in package-level variables build during initialization.
// Dispatch never logs.
func SetLogger(l *zap.Logger) {
	logger = l
}
