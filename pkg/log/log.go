// Package log builds the charmbracelet loggers shared by the gsm tools.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	loggers []*log.Logger
)

// NewLogger creates a new logger with level based on the DEBUG environment variable.
// If DEBUG is set (e.g., DEBUG=1), the level is DEBUG; otherwise, it's INFO.
// Logs are sent to os.Stderr.
func NewLogger() *log.Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo is NewLogger writing to w.
func NewLoggerTo(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  log.InfoLevel,
		Prefix: "gsm",
	})

	if os.Getenv("DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	mu.Lock()
	loggers = append(loggers, logger)
	mu.Unlock()
	return logger
}

// EnableDebug lowers every logger created by this package to DEBUG.
func EnableDebug() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		l.SetLevel(log.DebugLevel)
	}
}
