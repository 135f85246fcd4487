// Package logging builds the process logger. The TUI owns the terminal, so
// output goes to a file unless stderr is asked for explicitly.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Stderr is the log file value that selects standard error.
const Stderr = "-"

// New returns a logger writing to file at level, and a func that closes the
// underlying file. Unknown levels fall back to info.
func New(file, level string) (zerolog.Logger, func() error, error) {
	var (
		w       io.Writer
		closeFn = func() error { return nil }
	)

	switch file {
	case Stderr:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	case "":
		w = io.Discard
	default:
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
	return logger, closeFn, nil
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// Session tags logger with a fresh session id so interleaved SSH sessions
// can be told apart.
func Session(logger zerolog.Logger) (zerolog.Logger, string) {
	id := uuid.NewString()
	return logger.With().Str("session", id).Logger(), id
}
