package sloghandler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/handler"
	"github.com/philipp01105/lazylog/template"
)

// ErrorKey is the attribute key whose error value becomes the entry's
// error instead of a field.
const ErrorKey = "error"

// LevelTrace is the slog level used for core.TraceLevel.
const LevelTrace = slog.Level(-8)

// LevelCritical is the slog level used for core.CriticalLevel.
const LevelCritical = slog.Level(12)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// A string attribute named template.OriginalFormatKey at the top level
// becomes the entry's Template.
type SlogHandler struct {
	handler      handler.Handler
	level        core.Level
	attrs        []core.Field
	group        string
	recycleEntry bool
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h handler.Handler, level core.Level) *SlogHandler {
	s := &SlogHandler{
		handler: h,
		level:   level,
	}
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		s.recycleEntry = rc.CanRecycleEntry()
	}
	return s
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.level.Enabled(FromSlogLevel(level))
}

// Handle processes a slog.Record by converting it to a core.Entry and passing it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = FromSlogLevel(record.Level)
	entry.Message = record.Message
	if record.PC != 0 {
		entry.Caller = callerOf(record.PC)
	}

	// Add pre-configured attrs
	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	// Add record attrs
	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && s.special(entry, a) {
			return true
		}
		entry.Fields = appendAttr(entry.Fields, s.group, a)
		return true
	})

	err := s.handler.Handle(entry)
	if err == nil && s.recycleEntry {
		core.PutEntry(entry)
	}
	return err
}

// special moves the template and error attributes into the entry.
func (s *SlogHandler) special(entry *core.Entry, a slog.Attr) bool {
	switch a.Key {
	case template.OriginalFormatKey:
		if a.Value.Kind() == slog.KindString {
			entry.Template = a.Value.String()
			return true
		}
	case ErrorKey:
		if err, ok := a.Value.Any().(error); ok {
			entry.Err = err
			return true
		}
	}
	return false
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	c := *s
	c.attrs = newAttrs
	return &c
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	c := *s
	c.group = name
	if s.group != "" {
		c.group = s.group + "." + name
	}
	return &c
}

// FromSlogLevel converts a slog.Level to a core.Level.
func FromSlogLevel(level slog.Level) core.Level {
	switch {
	case level >= LevelCritical:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// ToSlogLevel converts a core.Level to a slog.Level.
func ToSlogLevel(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return LevelCritical
	}
}

// appendAttr converts a slog.Attr to fields, prepending the group prefix
// if present. Groups are flattened into dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, core.FieldOf(key, a.Value.String()))
	case slog.KindInt64:
		return append(fields, core.FieldOf(key, a.Value.Int64()))
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.FieldOf(key, a.Value.Float64()))
	case slog.KindBool:
		return append(fields, core.FieldOf(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.FieldOf(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, core.FieldOf(key, a.Value.Duration()))
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, key, ga)
		}
		return fields
	default:
		return append(fields, core.FieldOf(key, a.Value.Any()))
	}
}

func callerOf(pc uintptr) core.CallerInfo {
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.File == "" {
		return core.CallerInfo{}
	}
	return core.CallerInfo{
		File:      f.File,
		ShortFile: filepath.Base(f.File),
		Line:      f.Line,
		Function:  f.Function,
		Defined:   true,
	}
}
