package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w. The level comes from
// PLANETOIDS_LOG_LEVEL and defaults to info; unknown levels fall back to info
// with a warning.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	name := GetEnv(EnvLogLevel, "")
	if name == "" {
		name = "info"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", name)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// LogOutput opens PLANETOIDS_LOG_FILE for appending. When it is unset the
// returned writer discards everything. The close function is always non-nil.
func LogOutput() (io.Writer, func() error, error) {
	path := GetEnv(EnvLogFile, "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
