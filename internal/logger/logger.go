package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// Converted logs a completed conversion
func (l *Logger) Converted(source, dest string, cells int) {
	l.Info("converted",
		"source", source,
		"dest", dest,
		"cells", cells)
}

// CellSkipped logs a cell dropped during encoding
func (l *Logger) CellSkipped(index int, cellType string) {
	l.Warn("cell skipped",
		"cell", index,
		"type", cellType)
}

// ReadError logs a failure to read an input file
func (l *Logger) ReadError(path string, err error) {
	l.Error("read failed",
		"path", path,
		"error", err)
}

// WriteError logs a failure to write an output file
func (l *Logger) WriteError(path string, err error) {
	l.Error("write failed",
		"path", path,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, level string) {
	l.Debug("config loaded",
		"path", path,
		"log_level", level)
}

// RoundTrip logs the outcome of a round-trip check
func (l *Logger) RoundTrip(path string, clean bool) {
	if clean {
		l.Info("round trip clean", "path", path)
		return
	}
	l.Warn("round trip lossy", "path", path)
}
