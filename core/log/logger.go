// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type used as the logging seam by the
//              dispatcher and boundary. Derivation via With* returns a clone,
//              so a logger value never changes under a caller. All clones of
//              a logger share one write mutex, which keeps each call atomic
//              across concurrent tasks writing to the same destination.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with failure-aware logging

package log

import (
	"io"
	"os"
	"sync"

	"github.com/msto63/fault/core/failure"
)

// Logger represents a structured, leveled logger. The zero value is not
// usable; construct with New or NewWithConfig.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Fields added to every entry emitted by this logger
	contextFields Fields

	// Shared across clones so concurrent writes to one destination never
	// interleave
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration (info level, JSON
// format, stdout)
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}

	if config.Output == nil {
		logger.output = os.Stdout
	}

	return logger
}

// WithLevel derives a logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat derives a logger with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput derives a logger writing to the given destination.
// The derived logger keeps the shared write mutex, so mixing destinations
// across clones still serializes writes.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName derives a named logger
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField derives a logger with a persistent field on every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields derives a logger with persistent fields on every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	clone.contextFields = clone.contextFields.Merge(fields)
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogFailure logs a taxonomy failure with its kind, code and trace. Known
// kinds log at warn; anything outside the taxonomy logs at error. This
// mirrors the dispatcher's severity rule.
func (l *Logger) LogFailure(err error) {
	if err == nil {
		return
	}

	f, ok := failure.As(err)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"failure_kind": f.Kind().String(),
		"failure_code": f.Code().String(),
	}
	if status, present := f.StatusCode(); present {
		fields["status_code"] = status
	}
	if fieldErrs := f.FieldErrors(); len(fieldErrs) > 0 {
		fields["field_errors"] = fieldErrs
	}
	if f.HasTrace() {
		fields["stack_trace"] = f.Trace()
	}

	l.log(LevelWarn, f.String(), f, fields)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// log assembles the entry and writes it under the shared mutex
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.WithError(err).WithFields(l.contextFields)
	for _, fieldSet := range fields {
		entry.WithFields(fieldSet)
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.writeMu.Lock()
	l.output.Write(formatted)
	l.writeMu.Unlock()
}

// clone creates a copy of the logger for immutable derivation. The write
// mutex is shared, not copied.
func (l *Logger) clone() *Logger {
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: l.contextFields.Clone(),
		writeMu:       l.writeMu,
	}
}
