// Package logging provides the leveled, structured logger used by the twine
// command and its subcommands.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrus() logrus.Level {
	switch l {
	case LogLevelDebug:
		return logrus.DebugLevel
	case LogLevelWarn:
		return logrus.WarnLevel
	case LogLevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown names map to
// LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Format selects the log line encoding.
type Format string

const (
	// FormatText writes key=value lines.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

const timestampFormat = "2006-01-02T15:04:05.000"

// Logger provides structured logging. Loggers derived with WithField share
// the level, output and enabled state of their parent.
type Logger struct {
	entry    *logrus.Entry
	disabled *atomic.Bool
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is recorded as the "app" field of every message.
	Prefix string
	// Format is the line encoding. Defaults to FormatText.
	Format Format
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelWarn,
		Output: os.Stderr,
		Prefix: "twine",
		Format: FormatText,
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	base := logrus.New()
	base.SetOutput(cfg.Output)
	base.SetLevel(cfg.Level.logrus())
	switch cfg.Format {
	case FormatJSON:
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	default:
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	entry := logrus.NewEntry(base)
	if cfg.Prefix != "" {
		entry = entry.WithField("app", cfg.Prefix)
	}
	return &Logger{entry: entry, disabled: new(atomic.Bool)}
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), disabled: l.disabled}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields)), disabled: l.disabled}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// WithError returns a new logger with the error field set.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{entry: l.entry.WithError(err), disabled: l.disabled}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.entry.Logger.SetLevel(level.logrus())
}

// Level returns the minimum log level.
func (l *Logger) Level() LogLevel {
	switch l.entry.Logger.GetLevel() {
	case logrus.DebugLevel, logrus.TraceLevel:
		return LogLevelDebug
	case logrus.InfoLevel:
		return LogLevelInfo
	case logrus.WarnLevel:
		return LogLevelWarn
	default:
		return LogLevelError
	}
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// Disable disables all logging.
func (l *Logger) Disable() {
	l.disabled.Store(true)
}

// Enable enables logging.
func (l *Logger) Enable() {
	l.disabled.Store(false)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(logrus.DebugLevel, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(logrus.InfoLevel, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(logrus.WarnLevel, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(logrus.ErrorLevel, msg, args...)
}

func (l *Logger) log(level logrus.Level, msg string, args ...any) {
	if l.disabled.Load() {
		return
	}
	if len(args) > 0 {
		l.entry.Logf(level, msg, args...)
		return
	}
	l.entry.Log(level, msg)
}

// NullLogger is a logger that discards all output.
var NullLogger = newNullLogger()

func newNullLogger() *Logger {
	l := NewLogger(LoggerConfig{Output: io.Discard})
	l.Disable()
	return l
}

var (
	defaultLogger     *Logger
	defaultLoggerOnce sync.Once
	defaultLoggerMu   sync.RWMutex
)

// GetLogger returns the process-wide logger.
// Creates a default logger on first call if not set.
func GetLogger() *Logger {
	defaultLoggerOnce.Do(func() {
		defaultLoggerMu.Lock()
		if defaultLogger == nil {
			defaultLogger = NewLogger(DefaultLoggerConfig())
		}
		defaultLoggerMu.Unlock()
	})
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetLogger sets the process-wide logger.
// Should be called early in startup.
func SetLogger(l *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}
