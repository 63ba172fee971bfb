package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// FileName is the log file written inside the log directory.
const FileName = "debug.log"

// New opens <logDir>/debug.log for appending and returns a logger writing to
// it. The file is kept out of the terminal so the TUI is never overdrawn.
// The returned closer releases the file.
func New(logDir, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if logDir == "" {
		logDir = "."
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir %q: %w", logDir, err)
	}

	logPath := filepath.Join(logDir, FileName)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file %q: %w", logPath, err)
	}

	return NewWithWriter(f, lvl), f, nil
}

// NewWithWriter builds the application logger on top of any writer.
func NewWithWriter(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return zerolog.New(w).
		Level(lvl).
		With().
		Str("app", "notesaver").
		Timestamp().
		Caller().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel accepts the zerolog level names; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
