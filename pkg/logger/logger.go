// Package logger provides the leveled logger used by the decoder and the CLI.
// It is a thin wrapper around zerolog that keeps a printf-style API.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level represents the logging level.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return ""
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// ParseLevel parses a level name such as "debug" or "WARN". "none" and "off"
// disable logging.
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
	case "none", "off":
		return LevelNone, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger provides logging functionality.
type Logger struct {
	mu     sync.RWMutex
	level  Level
	output io.Writer
	zl     zerolog.Logger
}

var defaultLogger = New(os.Stderr, LevelInfo)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// New creates a logger writing JSON lines to output.
func New(output io.Writer, level Level) *Logger {
	l := &Logger{level: level, output: output}
	l.build()
	return l
}

// NewConsole creates a logger writing human-readable lines to output.
func NewConsole(output io.Writer, level Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}, level)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(io.Discard, LevelNone)
}

// build must be called with mu held or before l is shared.
func (l *Logger) build() {
	l.zl = zerolog.New(l.output).
		Level(l.level.zerolog()).
		With().
		Timestamp().
		Str("component", "fhirmodels").
		Logger()
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.build()
}

// Zerolog returns the underlying logger for structured events.
func (l *Logger) Zerolog() zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zl
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level != LevelNone && level >= l.level
}

func (l *Logger) log(level Level, format string, args ...any) {
	zl := l.Zerolog()
	var ev *zerolog.Event
	switch level {
	case LevelDebug:
		ev = zl.Debug()
	case LevelInfo:
		ev = zl.Info()
	case LevelWarn:
		ev = zl.Warn()
	case LevelError:
		ev = zl.Error()
	default:
		return
	}
	ev.Msgf(format, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Package-level convenience functions.

// Debug logs a debug message using the default logger.
func Debug(format string, args ...any) {
	defaultLogger.Debug(format, args...)
}

// Info logs an info message using the default logger.
func Info(format string, args ...any) {
	defaultLogger.Info(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...any) {
	defaultLogger.Warn(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...any) {
	defaultLogger.Error(format, args...)
}

// SetLevel sets the level of the default logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output of the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// Disable turns off the default logger.
func Disable() {
	defaultLogger.SetLevel(LevelNone)
}
