// Package logger builds the charmbracelet/log logger used across the picker.
// The terminal UI owns stderr and the result owns stdout, so log lines only
// ever go to a file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger appending to file at the given level. An empty file
// name yields a logger that discards everything. The returned closer must be
// called once logging is done.
func New(file, level string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if file == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	return NewWithWriter(f, lvl), f, nil
}

// NewWithWriter creates a logger writing timestamped text lines to w
func NewWithWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "fuzz",
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    false,
		Formatter:       log.TextFormatter,
	})
}
