package logger

import (
	"fmt"
	"reflect"
	"time"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/handler"
	"github.com/philipp01105/lazylog/interp"
	"github.com/philipp01105/lazylog/template"
)

// callerPackages are skipped when looking up the caller, so caller info
// points at the code calling into logger or interp through any of their
// entry points.
var callerPackages = []string{
	reflect.TypeFor[Logger]().PkgPath(),
	reflect.TypeFor[interp.Handler]().PkgPath(),
}

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	recycleEntry  bool
	coarseClock   bool
	provider      template.Provider
}

var _ interp.Sink = (*Logger)(nil)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	recycleEntry  bool
	coarseClock   bool
	provider      template.Provider
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:    core.InfoLevel, // Default level
		provider: template.Invariant,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleEntry to avoid interface assertion in Build()
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		b.recycleEntry = rc.CanRecycleEntry()
	} else {
		b.recycleEntry = false
	}
	return b
}

// WithLevel sets the minimum level. NoneLevel disables the logger.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCoarseClock timestamps entries from a clock refreshed every
// 500µs instead of calling time.Now for each entry.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// WithProvider sets the provider used to render message templates.
// nil restores template.Invariant.
func (b *Builder) WithProvider(p template.Provider) *Builder {
	if p == nil {
		p = template.Invariant
	}
	b.provider = p
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		recycleEntry:  b.recycleEntry,
		coarseClock:   b.coarseClock,
		provider:      b.provider,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	child := *l
	child.fields = newFields
	return &child
}

// Level returns the minimum level of the logger.
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether entries at level reach the handler.
func (l *Logger) Enabled(level core.Level) bool {
	return l.handler != nil && l.level.Enabled(level)
}

// LogTemplate records an entry built from a message template and its
// arguments. The message is rendered with the logger's provider and the
// named arguments are added as fields after the logger's own.
func (l *Logger) LogTemplate(level core.Level, id core.EventID, err error, format string, args []any) {
	if !l.Enabled(level) {
		return
	}

	entry := l.newEntry(level)
	entry.Message = template.Render(format, args, l.provider)
	entry.Template = format
	entry.EventID = id
	entry.Err = err
	for _, arg := range template.Bind(format, args) {
		if arg.Name == template.OriginalFormatKey {
			continue
		}
		entry.Fields = append(entry.Fields, core.FieldOf(arg.Name, arg.Value))
	}
	l.handle(entry)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check optimization - exit early BEFORE any allocations
	if !l.level.Enabled(level) {
		return
	}

	l.log(level, msg, fields)
}

// log is the internal logging method that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	entry := l.newEntry(level)
	entry.Message = msg
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	l.handle(entry)
}

// newEntry takes an entry from the pool carrying the logger's fields.
func (l *Logger) newEntry(level core.Level) *core.Entry {
	entry := core.GetEntry()
	if l.coarseClock {
		entry.Time = core.Now()
	} else {
		entry.Time = time.Now()
	}
	entry.Level = level

	// Add logger's default fields
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}

	if l.includeCaller {
		_, entry.Caller = core.CallerOutside(1, callerPackages...)
	}
	return entry
}

func (l *Logger) handle(entry *core.Entry) {
	err := l.handler.Handle(entry)
	if err != nil {
		return
	}

	// Return entry to pool if handler supports it
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.level.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.level.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.level.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.level.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.level.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if !l.level.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.level.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.level.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.level.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.level.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.level.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if !l.level.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
