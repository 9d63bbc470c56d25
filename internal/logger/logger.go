package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New creates the shared application logger, writing to
// <dir>/.glass/glass.log. The TUI owns the terminal, so logs never go
// to stderr while the shell is running; persistence and session-backend
// failures land here instead.
func New(dir string) (*log.Logger, error) {
	glassDir := filepath.Join(dir, ".glass")
	if err := os.MkdirAll(glassDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .glass directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(glassDir, "glass.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := log.New(f)
	l.SetReportTimestamp(true)
	return l, nil
}

// Discard returns a logger that drops everything. Used when no
// workspace directory is writable and by tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
