package interp

import (
	"github.com/philipp01105/lazylog/core"
)

// Log builds a message with build and submits it to s at level. build
// is only called when s has level enabled, so nothing it computes is
// evaluated for filtered messages.
//
//	interp.Log(sink, core.InfoLevel, func(h *interp.Handler) {
//		h.Literal("It is currently ")
//		h.AppendFormat("now", time.Now(), "HH:mm:ss:logTime")
//		h.Literal("!")
//	})
//
// submits "It is currently {logTime:HH:mm:ss}!" with one argument.
func Log(s Sink, level core.Level, build func(h *Handler)) {
	LogEvent(s, level, core.EventID{}, nil, build)
}

// LogEvent is Log with an event id and an error attached to the entry.
func LogEvent(s Sink, level core.Level, id core.EventID, err error, build func(h *Handler)) {
	// Level check before touching the pool
	if s == nil || !s.Enabled(level) {
		return
	}
	h := handlerPool.Get().(*Handler)
	h.enabled = true
	build(h)
	h.LogAndClear(s, level, id, err)
}

// Logger submits lazily built messages to a Sink at fixed levels.
// The zero Logger drops everything.
type Logger struct {
	sink Sink
}

// New returns a Logger writing to s.
func New(s Sink) Logger {
	return Logger{sink: s}
}

// Sink returns the underlying sink.
func (l Logger) Sink() Sink {
	return l.sink
}

// Enabled reports whether messages at level would be built.
func (l Logger) Enabled(level core.Level) bool {
	return l.sink != nil && l.sink.Enabled(level)
}

// Log builds and submits a message at level.
func (l Logger) Log(level core.Level, build func(h *Handler)) {
	LogEvent(l.sink, level, core.EventID{}, nil, build)
}

// LogEvent builds and submits a message at level with an event id and
// an error.
func (l Logger) LogEvent(level core.Level, id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, level, id, err, build)
}

// Trace builds and submits a trace message
func (l Logger) Trace(build func(h *Handler)) {
	LogEvent(l.sink, core.TraceLevel, core.EventID{}, nil, build)
}

// TraceEvent builds and submits a trace message with event id and error
func (l Logger) TraceEvent(id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, core.TraceLevel, id, err, build)
}

// Debug builds and submits a debug message
func (l Logger) Debug(build func(h *Handler)) {
	LogEvent(l.sink, core.DebugLevel, core.EventID{}, nil, build)
}

// DebugEvent builds and submits a debug message with event id and error
func (l Logger) DebugEvent(id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, core.DebugLevel, id, err, build)
}

// Info builds and submits an info message
func (l Logger) Info(build func(h *Handler)) {
	LogEvent(l.sink, core.InfoLevel, core.EventID{}, nil, build)
}

// InfoEvent builds and submits an info message with event id and error
func (l Logger) InfoEvent(id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, core.InfoLevel, id, err, build)
}

// Warn builds and submits a warning message
func (l Logger) Warn(build func(h *Handler)) {
	LogEvent(l.sink, core.WarnLevel, core.EventID{}, nil, build)
}

// WarnEvent builds and submits a warning message with event id and error
func (l Logger) WarnEvent(id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, core.WarnLevel, id, err, build)
}

// Error builds and submits an error message
func (l Logger) Error(build func(h *Handler)) {
	LogEvent(l.sink, core.ErrorLevel, core.EventID{}, nil, build)
}

// ErrorEvent builds and submits an error message with event id and error
func (l Logger) ErrorEvent(id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, core.ErrorLevel, id, err, build)
}

// Critical builds and submits a critical message
func (l Logger) Critical(build func(h *Handler)) {
	LogEvent(l.sink, core.CriticalLevel, core.EventID{}, nil, build)
}

// CriticalEvent builds and submits a critical message with event id and error
func (l Logger) CriticalEvent(id core.EventID, err error, build func(h *Handler)) {
	LogEvent(l.sink, core.CriticalLevel, id, err, build)
}
