package logger

import (
	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/interp"
)

// The Ex methods build their message lazily: build only runs when the
// level is enabled and its appends become the entry's template and
// fields.
//
//	log.InfoEx(func(h *interp.Handler) {
//		h.Literal("The value of i is ")
//		i++
//		h.Append("++i", i)
//	})

// LogEx logs a lazily built message at level
func (l *Logger) LogEx(level core.Level, build func(h *interp.Handler)) {
	interp.LogEvent(l, level, core.EventID{}, nil, build)
}

// LogEventEx logs a lazily built message at level with an event id and an error
func (l *Logger) LogEventEx(level core.Level, id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, level, id, err, build)
}

// TraceEx logs a lazily built trace message
func (l *Logger) TraceEx(build func(h *interp.Handler)) {
	interp.LogEvent(l, core.TraceLevel, core.EventID{}, nil, build)
}

// TraceEventEx logs a lazily built trace message with an event id and an error
func (l *Logger) TraceEventEx(id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, core.TraceLevel, id, err, build)
}

// DebugEx logs a lazily built debug message
func (l *Logger) DebugEx(build func(h *interp.Handler)) {
	interp.LogEvent(l, core.DebugLevel, core.EventID{}, nil, build)
}

// DebugEventEx logs a lazily built debug message with an event id and an error
func (l *Logger) DebugEventEx(id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, core.DebugLevel, id, err, build)
}

// InfoEx logs a lazily built info message
func (l *Logger) InfoEx(build func(h *interp.Handler)) {
	interp.LogEvent(l, core.InfoLevel, core.EventID{}, nil, build)
}

// InfoEventEx logs a lazily built info message with an event id and an error
func (l *Logger) InfoEventEx(id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, core.InfoLevel, id, err, build)
}

// WarnEx logs a lazily built warning message
func (l *Logger) WarnEx(build func(h *interp.Handler)) {
	interp.LogEvent(l, core.WarnLevel, core.EventID{}, nil, build)
}

// WarnEventEx logs a lazily built warning message with an event id and an error
func (l *Logger) WarnEventEx(id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, core.WarnLevel, id, err, build)
}

// ErrorEx logs a lazily built error message
func (l *Logger) ErrorEx(build func(h *interp.Handler)) {
	interp.LogEvent(l, core.ErrorLevel, core.EventID{}, nil, build)
}

// ErrorEventEx logs a lazily built error message with an event id and an error
func (l *Logger) ErrorEventEx(id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, core.ErrorLevel, id, err, build)
}

// CriticalEx logs a lazily built critical message
func (l *Logger) CriticalEx(build func(h *interp.Handler)) {
	interp.LogEvent(l, core.CriticalLevel, core.EventID{}, nil, build)
}

// CriticalEventEx logs a lazily built critical message with an event id and an error
func (l *Logger) CriticalEventEx(id core.EventID, err error, build func(h *interp.Handler)) {
	interp.LogEvent(l, core.CriticalLevel, id, err, build)
}

// Interp returns an interp.Logger writing to l.
func (l *Logger) Interp() interp.Logger {
	return interp.New(l)
}
