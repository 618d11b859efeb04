package slogsink

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/handler/sloghandler"
	"github.com/philipp01105/lazylog/interp"
	"github.com/philipp01105/lazylog/template"
)

// Attribute keys for the event id.
const (
	EventIDKey   = "event_id"
	EventNameKey = "event_name"
)

// Sink writes message templates to a *slog.Logger. Records carry the
// rendered message, one attribute per placeholder, the event id, the
// error under sloghandler.ErrorKey and the template under
// template.OriginalFormatKey.
type Sink struct {
	logger   *slog.Logger
	ctx      context.Context
	provider template.Provider
}

var _ interp.Sink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithContext sets the context passed to the slog handler.
func WithContext(ctx context.Context) Option {
	return func(s *Sink) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithProvider sets the provider used to render messages.
func WithProvider(p template.Provider) Option {
	return func(s *Sink) {
		if p != nil {
			s.provider = p
		}
	}
}

// New returns a Sink writing to l; nil means slog.Default().
func New(l *slog.Logger, opts ...Option) *Sink {
	if l == nil {
		l = slog.Default()
	}
	s := &Sink{
		logger:   l,
		ctx:      context.Background(),
		provider: template.Invariant,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether the slog handler accepts level.
func (s *Sink) Enabled(level core.Level) bool {
	return level != core.NoneLevel && s.logger.Enabled(s.ctx, sloghandler.ToSlogLevel(level))
}

var callerPackages = []string{
	reflect.TypeFor[Sink]().PkgPath(),
	reflect.TypeFor[interp.Handler]().PkgPath(),
}

// LogTemplate hands one record to the slog handler. The record's PC
// points at the first caller outside this package and interp.
func (s *Sink) LogTemplate(level core.Level, id core.EventID, err error, format string, args []any) {
	if !s.Enabled(level) {
		return
	}

	pc, _ := core.CallerOutside(1, callerPackages...)
	r := slog.NewRecord(time.Now(), sloghandler.ToSlogLevel(level), template.Render(format, args, s.provider), pc)
	for _, arg := range template.Bind(format, args) {
		if arg.Name == template.OriginalFormatKey {
			continue
		}
		r.AddAttrs(slog.Any(arg.Name, arg.Value))
	}
	if !id.IsZero() {
		r.AddAttrs(slog.Int(EventIDKey, id.ID))
		if id.Name != "" {
			r.AddAttrs(slog.String(EventNameKey, id.Name))
		}
	}
	if err != nil {
		r.AddAttrs(slog.Any(sloghandler.ErrorKey, err))
	}
	r.AddAttrs(slog.String(template.OriginalFormatKey, format))

	_ = s.logger.Handler().Handle(s.ctx, r)
}
