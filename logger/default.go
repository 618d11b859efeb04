package logger

import (
	"sync"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/formatter"
	"github.com/philipp01105/lazylog/handler/consolehandler"
	"github.com/philipp01105/lazylog/interp"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Synchronous text output to stdout, colored on a terminal
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
		Color:     consolehandler.ColorAuto,
	})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Trace logs a trace message using the default logger
func Trace(msg string, fields ...core.Field) {
	Default().Trace(msg, fields...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Critical logs a critical message using the default logger
func Critical(msg string, fields ...core.Field) {
	Default().Critical(msg, fields...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// LogEx logs a lazily built message at level using the default logger
func LogEx(level core.Level, build func(h *interp.Handler)) {
	interp.LogEvent(Default(), level, core.EventID{}, nil, build)
}

// LogEventEx logs a lazily built message with an event id and an error
// using the default logger
func LogEventEx(level core.Level, id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(Default(), level, id, err, build)
}

// TraceEx logs a lazily built trace message using the default logger
func TraceEx(build func(h *interp.Handler)) {
	interp.LogEvent(Default(), core.TraceLevel, core.EventID{}, nil, build)
}

// DebugEx logs a lazily built debug message using the default logger
func DebugEx(build func(h *interp.Handler)) {
	interp.LogEvent(Default(), core.DebugLevel, core.EventID{}, nil, build)
}

// InfoEx logs a lazily built info message using the default logger
func InfoEx(build func(h *interp.Handler)) {
	interp.LogEvent(Default(), core.InfoLevel, core.EventID{}, nil, build)
}

// WarnEx logs a lazily built warning message using the default logger
func WarnEx(build func(h *interp.Handler)) {
	interp.LogEvent(Default(), core.WarnLevel, core.EventID{}, nil, build)
}

// ErrorEx logs a lazily built error message using the default logger
func ErrorEx(build func(h *interp.Handler)) {
	interp.LogEvent(Default(), core.ErrorLevel, core.EventID{}, nil, build)
}

// CriticalEx logs a lazily built critical message using the default logger
func CriticalEx(build func(h *interp.Handler)) {
	interp.LogEvent(Default(), core.CriticalLevel, core.EventID{}, nil, build)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
