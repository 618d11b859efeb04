package zapsink

import (
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/interp"
	"github.com/philipp01105/lazylog/template"
)

// Field keys for the event id.
const (
	EventIDKey   = "event_id"
	EventNameKey = "event_name"
)

// Sink writes message templates to a *zap.Logger. The message is
// rendered; every placeholder becomes a field and the template itself
// is added under template.OriginalFormatKey.
type Sink struct {
	logger   *zap.Logger
	provider template.Provider
}

var _ interp.Sink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithProvider sets the provider used to render messages.
func WithProvider(p template.Provider) Option {
	return func(s *Sink) {
		if p != nil {
			s.provider = p
		}
	}
}

// New returns a Sink writing to l. When l was built with zap.AddCaller,
// entries report the first caller outside this package and interp.
func New(l *zap.Logger, opts ...Option) *Sink {
	s := &Sink{
		logger:   l,
		provider: template.Invariant,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var callerPackages = []string{
	reflect.TypeFor[Sink]().PkgPath(),
	reflect.TypeFor[interp.Handler]().PkgPath(),
}

// Enabled reports whether l has level enabled.
func (s *Sink) Enabled(level core.Level) bool {
	return level != core.NoneLevel && s.logger.Core().Enabled(Level(level))
}

// LogTemplate writes one entry.
func (s *Sink) LogTemplate(level core.Level, id core.EventID, err error, format string, args []any) {
	if level == core.NoneLevel {
		return
	}
	msg := template.Render(format, args, s.provider)
	ce := s.logger.Check(Level(level), msg)
	if ce == nil {
		return
	}
	if ce.Caller.Defined {
		if pc, caller := core.CallerOutside(1, callerPackages...); caller.Defined {
			ce.Caller = zapcore.EntryCaller{
				Defined:  true,
				PC:       pc,
				File:     caller.File,
				Line:     caller.Line,
				Function: caller.Function,
			}
		}
	}

	named := template.Bind(format, args)
	fields := make([]zap.Field, 0, len(named)+3)
	for _, arg := range named {
		fields = append(fields, zap.Any(arg.Name, arg.Value))
	}
	if !id.IsZero() {
		fields = append(fields, zap.Int(EventIDKey, id.ID))
		if id.Name != "" {
			fields = append(fields, zap.String(EventNameKey, id.Name))
		}
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	ce.Write(fields...)
}

// Level maps a core.Level to the closest zap level. Trace becomes
// Debug and Critical becomes Error.
func Level(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
