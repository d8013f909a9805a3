// Package telemetry provides a file-backed structured logger. The TUI owns
// the terminal, so anything worth recording (autosave failures in particular)
// goes to a log file instead of stderr.
package telemetry

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger wraps a charm logger with ownership of its output file.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// New opens (or creates) a logger appending to path. An empty path yields a
// logger that discards everything, so call sites never need nil checks.
func New(path string) (*Logger, error) {
	if path == "" {
		return &Logger{Logger: log.New(io.Discard)}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	logger := log.New(f)
	logger.SetFormatter(log.JSONFormatter)
	logger.SetReportTimestamp(true)

	return &Logger{Logger: logger, closer: f}, nil
}

// Close releases the underlying log file.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
