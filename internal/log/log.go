// Package log provides structured logging for the dtypes tools.
// Entries carry a level, a category and key=value fields, and are only
// written once logging has been initialized via --debug or DTYPES_DEBUG.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name (as printed by Level.String) back to a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if l.String() == s {
			return l, nil
		}
	}
	return LevelDebug, fmt.Errorf("unknown log level %q", s)
}

// Category groups related log messages.
type Category string

const (
	CatCLI      Category = "cli"      // Command execution
	CatConfig   Category = "config"   // Configuration loading
	CatRegistry Category = "registry" // Data type lookups
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

// defaultLogger is swapped atomically so Init and Reset may race with
// logging goroutines.
var defaultLogger atomic.Pointer[Logger]

// Init points the global logger at the file at path.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path is the user-supplied debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l := &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
	}
	defaultLogger.Store(l)
	return l.close, nil
}

// InitWriter points the global logger at w. Used for stderr output and tests.
func InitWriter(w io.Writer) {
	defaultLogger.Store(&Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
	})
}

// Reset disables logging and drops the global logger.
func Reset() {
	defaultLogger.Store(nil)
}

// close stops l from writing and closes its file, if any.
func (l *Logger) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := defaultLogger.Load(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := defaultLogger.Load()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	// Format: 2025-12-06T10:45:00 [ERROR] [registry] message key=value key2=value2
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	entry := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// Odd field count: orphan key with no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	entry += "\n"

	if l.writer != nil {
		_, _ = l.writer.Write([]byte(entry))
	}
}
