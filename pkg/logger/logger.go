// pkg/logger/logger.go

// Package logger wraps zap behind the small surface the services use.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around a named zap sugared logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a named logger writing to stdout. Debug switches to the
// development encoder and enables debug-level output.
func New(name string, debug bool) *Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewNop()
	}
	return &Logger{sugar: zl.Named(name).Sugar()}
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug logs a debug message with alternating keys and values.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an informational message with alternating keys and values.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning message with alternating keys and values.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error message with alternating keys and values.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
