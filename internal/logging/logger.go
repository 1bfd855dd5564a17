// Package logging provides leveled logging over the stdlib log package.
// Output goes to stderr so stdout stays clean for histogram data.
package logging

import (
	"log"
	"os"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger provides leveled logging
type Logger struct {
	level Level
}

// New creates a logger with the specified level
func New(level Level) *Logger {
	return &Logger{level: level}
}

// NewDefault creates a logger based on the RHISTO_LOG_LEVEL environment
// variable. The default is WARN so routine runs stay quiet.
func NewDefault() *Logger {
	level := LevelWarn
	switch os.Getenv("RHISTO_LOG_LEVEL") {
	case "ERROR":
		level = LevelError
	case "WARN":
		level = LevelWarn
	case "INFO":
		level = LevelInfo
	case "DEBUG":
		level = LevelDebug
	}
	return &Logger{level: level}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LevelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LevelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Global logger instance
var Default = NewDefault()
