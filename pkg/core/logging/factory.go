// ============================================================================
// meinBIERKELLER (mBK) - Craft-Beer-Katalog
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating Foundation loggers
// Author:      msto63
// Created:     2026-08-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mbklog "github.com/msto63/mBK/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "json", "text" or "console" (default: text)

	// Additional outputs (besides stderr)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// NewLogger creates a new Foundation logger from the given configuration
func NewLogger(cfg LoggerConfig) *mbklog.Logger {
	level := parseLevel(cfg.Level)

	// Log output goes to stderr so that parsed records on stdout
	// stay pipeable.
	var output io.Writer = os.Stderr

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format := mbklog.FormatText
	switch cfg.Format {
	case "json":
		format = mbklog.FormatJSON
	case "console":
		format = mbklog.FormatConsole
	}

	logger := mbklog.NewWithConfig(mbklog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})

	return logger
}

// NewSimpleLogger creates a logger with standard configuration
func NewSimpleLogger(serviceName string) *mbklog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to mbklog.Level
func parseLevel(level string) mbklog.Level {
	switch level {
	case "trace":
		return mbklog.LevelTrace
	case "debug":
		return mbklog.LevelDebug
	case "info":
		return mbklog.LevelInfo
	case "warn", "warning":
		return mbklog.LevelWarn
	case "error":
		return mbklog.LevelError
	case "fatal":
		return mbklog.LevelFatal
	default:
		return mbklog.LevelInfo
	}
}

// Compatibility layer for code using the simple key-value Logger

// Logger wraps the Foundation logger for compatibility
type Logger struct {
	*mbklog.Logger
	name string
}

// New creates a new simple logger
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// NewWithConfig creates a wrapped logger from an explicit configuration
func NewWithConfig(cfg LoggerConfig) *Logger {
	return &Logger{
		Logger: NewLogger(cfg),
		name:   cfg.ServiceName,
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	mbkLevel := mbklog.LevelInfo
	switch level {
	case LevelDebug:
		mbkLevel = mbklog.LevelDebug
	case LevelInfo:
		mbkLevel = mbklog.LevelInfo
	case LevelWarn:
		mbkLevel = mbklog.LevelWarn
	case LevelError:
		mbkLevel = mbklog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(mbkLevel),
		name:   l.name,
	}
}

// WithRunID returns a new logger bound to the given run ID
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{
		Logger: l.Logger.WithRunID(runID),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mbklog.Fields
func toFields(keysAndValues ...interface{}) mbklog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mbklog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
