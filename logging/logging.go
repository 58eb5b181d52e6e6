// Package logging implements support for structured logging.
//
// This package is inspired heavily by go-kit's logging package, and also by
// the level-based module logging used across the command line tools.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var backend = logBackend{
	baseLogger: log.NewNopLogger(),
}

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

// String returns the string representation of a Format.
func (f Format) String() string {
	switch f {
	case FmtLogfmt:
		return "logfmt"
	case FmtJSON:
		return "json"
	default:
		panic("logging: unsupported format")
	}
}

// Set sets the Format to the value specified by the provided string.
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "logfmt":
		*f = FmtLogfmt
	case "json":
		*f = FmtJSON
	default:
		return fmt.Errorf("logging: invalid log format: '%s'", s)
	}
	return nil
}

// Type returns the list of supported Formats.
func (f *Format) Type() string {
	return "[logfmt,json]"
}

// Level is a log level.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

func (l Level) toOption() level.Option {
	switch l {
	case LevelDebug:
		return level.AllowDebug()
	case LevelInfo:
		return level.AllowInfo()
	case LevelWarn:
		return level.AllowWarn()
	case LevelError:
		return level.AllowError()
	default:
		panic("logging: unsupported log level")
	}
}

// String returns the string representation of a Level.
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
		panic("logging: unsupported log level")
	}
}

// Set sets the Level to the value specified by the provided string.
func (l *Level) Set(s string) error {
	switch strings.ToLower(s) {
	case "debug":
		*l = LevelDebug
	case "info":
		*l = LevelInfo
	case "warn":
		*l = LevelWarn
	case "error":
		*l = LevelError
	default:
		return fmt.Errorf("logging: invalid log level: '%s'", s)
	}
	return nil
}

// Type returns the list of supported Levels.
func (l *Level) Type() string {
	return "[debug,info,warn,error]"
}

// Logger is a logger instance.
type Logger struct {
	module  string
	keyvals []interface{}
}

// Debug logs the message and key value pairs at the Debug log level.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.log(level.Debug, msg, keyvals)
}

// Info logs the message and key value pairs at the Info log level.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.log(level.Info, msg, keyvals)
}

// Warn logs the message and key value pairs at the Warn log level.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.log(level.Warn, msg, keyvals)
}

// Error logs the message and key value pairs at the Error log level.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.log(level.Error, msg, keyvals)
}

// With returns a clone of the logger with the provided key/value pairs
// added as context for all subsequent logs.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		module:  l.module,
		keyvals: append(append([]interface{}{}, l.keyvals...), keyvals...),
	}
}

func (l *Logger) log(fn func(log.Logger) log.Logger, msg string, keyvals []interface{}) {
	logger := backend.loggerFor(l.module)
	if len(l.keyvals) > 0 {
		logger = log.With(logger, l.keyvals...)
	}
	_ = fn(logger).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

// GetLogger creates a new logger instance with the specified module.
//
// Loggers may be created before the backend is initialized, in which case
// their output is discarded until Initialize is called.
func GetLogger(module string) *Logger {
	return &Logger{module: module}
}

// Initialize initializes the logging backend to write to the provided
// Writer with the given format and log levels.
//
// Note: By default all log messages are discarded.
func Initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	backend.Lock()
	defer backend.Unlock()

	if backend.initialized {
		return fmt.Errorf("logging: already initialized")
	}

	var logger log.Logger
	w = log.NewSyncWriter(w)
	switch format {
	case FmtLogfmt:
		logger = log.NewLogfmtLogger(w)
	case FmtJSON:
		logger = log.NewJSONLogger(w)
	default:
		return fmt.Errorf("logging: unsupported log format: %v", format)
	}

	backend.baseLogger = log.With(logger, "ts", log.DefaultTimestampUTC)
	backend.defaultLevel = defaultLvl
	backend.moduleLevels = make(map[string]Level, len(moduleLvls))
	for k, v := range moduleLvls {
		backend.moduleLevels[k] = v
	}
	backend.initialized = true

	return nil
}

type logBackend struct {
	sync.RWMutex

	baseLogger   log.Logger
	defaultLevel Level
	moduleLevels map[string]Level
	initialized  bool
}

func (b *logBackend) loggerFor(module string) log.Logger {
	b.RLock()
	defer b.RUnlock()

	if !b.initialized {
		return b.baseLogger
	}

	lvl, ok := b.moduleLevels[module]
	if !ok {
		lvl = b.defaultLevel
	}

	logger := log.With(b.baseLogger, "module", module)
	return level.NewFilter(logger, lvl.toOption())
}
