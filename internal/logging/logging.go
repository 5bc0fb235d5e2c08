// Package logging builds the structured logger shared by the CLI and the
// game adapter.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the breakout host.
const Prefix = "breakout"

// New creates a timestamped logger writing to w at the named level.
// An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = io.Discard
	}

	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending log lines, creating parent directories
// as needed. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
