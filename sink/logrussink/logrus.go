package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/interp"
	"github.com/philipp01105/lazylog/template"
)

// Field keys for the event id.
const (
	EventIDKey   = "event_id"
	EventNameKey = "event_name"
)

// Sink writes message templates to a *logrus.Logger.
type Sink struct {
	logger   *logrus.Logger
	provider template.Provider
}

var _ interp.Sink = (*Sink)(nil)

// New returns a Sink writing to l. A nil provider means
// template.Invariant.
func New(l *logrus.Logger, p template.Provider) *Sink {
	if p == nil {
		p = template.Invariant
	}
	return &Sink{logger: l, provider: p}
}

// Enabled reports whether l has level enabled.
func (s *Sink) Enabled(level core.Level) bool {
	return level != core.NoneLevel && s.logger.IsLevelEnabled(Level(level))
}

// LogTemplate writes one entry. Critical entries are written at fatal
// level through Entry.Log, which neither exits nor panics.
func (s *Sink) LogTemplate(level core.Level, id core.EventID, err error, format string, args []any) {
	if !s.Enabled(level) {
		return
	}
	named := template.Bind(format, args)
	fields := make(logrus.Fields, len(named)+2)
	for _, arg := range named {
		fields[arg.Name] = arg.Value
	}
	if !id.IsZero() {
		fields[EventIDKey] = id.ID
		if id.Name != "" {
			fields[EventNameKey] = id.Name
		}
	}
	entry := s.logger.WithFields(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(Level(level), template.Render(format, args, s.provider))
}

// Level maps a core.Level to a logrus level.
func Level(level core.Level) logrus.Level {
	switch level {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}
