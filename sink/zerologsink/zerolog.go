package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/interp"
	"github.com/philipp01105/lazylog/template"
)

// Field keys for the event id.
const (
	EventIDKey   = "event_id"
	EventNameKey = "event_name"
)

// Sink writes message templates to a zerolog.Logger.
type Sink struct {
	logger   zerolog.Logger
	provider template.Provider
}

var _ interp.Sink = (*Sink)(nil)

// New returns a Sink writing to l. A nil provider means
// template.Invariant.
func New(l zerolog.Logger, p template.Provider) *Sink {
	if p == nil {
		p = template.Invariant
	}
	return &Sink{logger: l, provider: p}
}

// Enabled reports whether l and the global zerolog level accept level.
func (s *Sink) Enabled(level core.Level) bool {
	if level == core.NoneLevel {
		return false
	}
	zl := Level(level)
	return zl >= s.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// LogTemplate writes one event. Critical entries are written at fatal
// level without exiting.
func (s *Sink) LogTemplate(level core.Level, id core.EventID, err error, format string, args []any) {
	if !s.Enabled(level) {
		return
	}
	ev := s.logger.WithLevel(Level(level))
	if ev == nil {
		return
	}
	for _, arg := range template.Bind(format, args) {
		ev = ev.Interface(arg.Name, arg.Value)
	}
	if !id.IsZero() {
		ev = ev.Int(EventIDKey, id.ID)
		if id.Name != "" {
			ev = ev.Str(EventNameKey, id.Name)
		}
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(template.Render(format, args, s.provider))
}

// Level maps a core.Level to a zerolog level.
func Level(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.CriticalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}
