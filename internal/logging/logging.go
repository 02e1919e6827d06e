// Package logging provides structured, leveled logging for padvi.
//
// The terminal owns stdout and stderr while the editor runs, so logs go
// to a rotating JSON file. Every logger carries a session id so runs
// can be told apart in a shared file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Options configures a Logger.
type Options struct {
	// Level is the minimum level written.
	Level Level

	// File is the log path. Empty selects DefaultPath.
	File string

	// Rotation limits, as understood by lumberjack.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Output overrides the rotating file, mainly for tests.
	Output io.Writer
}

// DefaultPath returns the log file location: padvi/padvi.log under
// $XDG_STATE_HOME, falling back to ~/.local/state.
func DefaultPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "padvi", "padvi.log")
}

// Logger writes structured records. Loggers derived with WithField
// share the level and the underlying writer of their parent.
type Logger struct {
	slog    *slog.Logger
	level   *slog.LevelVar
	closer  io.Closer
	session string
}

// New creates a logger according to opts.
func New(opts Options) (*Logger, error) {
	w := opts.Output
	var closer io.Closer
	if w == nil {
		path := opts.File
		if path == "" {
			path = DefaultPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		w, closer = lj, lj
	}

	level := new(slog.LevelVar)
	level.Set(opts.Level.slog())

	session := uuid.NewString()
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		slog:    slog.New(handler).With("session", session),
		level:   level,
		closer:  closer,
		session: session,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	l, _ := New(Options{Level: LevelError, Output: io.Discard})
	return l
}

// Session returns the session id attached to every record.
func (l *Logger) Session() string {
	return l.session
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	c := *l
	c.slog = l.slog.With(key, value)
	c.closer = nil
	return &c
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	c := *l
	c.slog = l.slog.With(args...)
	c.closer = nil
	return &c
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level for this logger and its relatives.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slog())
}

// Enabled reports whether records at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level.slog() >= l.level.Level()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// Close closes the log file. Derived loggers do not own the file and
// their Close is a no-op.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
