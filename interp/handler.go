package interp

import (
	"sync"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/template"
)

// Sink is a leveled logging backend that accepts message templates.
type Sink interface {
	// Enabled reports whether entries at level would be recorded.
	Enabled(level core.Level) bool

	// LogTemplate records one entry. args is index-aligned with the
	// placeholders of format and is owned by the sink afterwards.
	LogTemplate(level core.Level, id core.EventID, err error, format string, args []any)
}

// averagePlaceholderLength sizes fresh template buffers
const averagePlaceholderLength = 11

// Handler accumulates one message: a template with escaped literals and
// named placeholders, plus the arguments for those placeholders. A
// Handler created for a disabled level ignores every append.
//
// A Handler is used by a single goroutine for the duration of one
// message.
type Handler struct {
	enabled bool
	buf     []byte
	args    []any
}

var handlerPool = sync.Pool{
	New: func() interface{} {
		return &Handler{buf: make([]byte, 0, 64+4*averagePlaceholderLength)}
	},
}

// disabled is returned by NewHandler for filtered levels. It is never
// written to or pooled, so it can be shared.
var disabled = &Handler{}

// NewHandler returns a Handler for one message at level. Its Enabled
// method reports whether s accepts the level; when it does not, the
// Handler records nothing and no pooled Handler is taken. The Handler
// must be finished with LogAndClear.
func NewHandler(s Sink, level core.Level) *Handler {
	if s == nil || !s.Enabled(level) {
		return disabled
	}
	h := handlerPool.Get().(*Handler)
	h.enabled = true
	return h
}

// Enabled reports whether appends are recorded.
func (h *Handler) Enabled() bool {
	return h.enabled
}

// Literal appends literal text.
func (h *Handler) Literal(s string) {
	if !h.enabled {
		return
	}
	h.buf = template.AppendEscaped(h.buf, s)
}

// Append adds a placeholder named expr for v. An empty expr names the
// placeholder by its position.
func (h *Handler) Append(expr string, v any) {
	h.AppendAligned(expr, v, 0, "")
}

// AppendFormat adds a placeholder with a format spec. A spec of the form
// "HH:mm:ss:name" names the placeholder explicitly.
func (h *Handler) AppendFormat(expr string, v any, format string) {
	h.AppendAligned(expr, v, 0, format)
}

// AppendAligned adds a placeholder with an alignment and a format spec.
// Positive alignment right-aligns the rendered value, negative
// left-aligns it. []rune values are stored as strings.
func (h *Handler) AppendAligned(expr string, v any, alignment int, format string) {
	if !h.enabled {
		return
	}
	h.buf = template.AppendPlaceholder(h.buf, template.Placeholder{
		Expr:      expr,
		Alignment: alignment,
		Format:    format,
	}, len(h.args))
	if r, ok := v.([]rune); ok {
		v = string(r)
	}
	h.args = append(h.args, v)
}

// Format returns the template built so far.
func (h *Handler) Format() string {
	return string(h.buf)
}

// Args returns the arguments captured so far.
func (h *Handler) Args() []any {
	return h.args
}

// LogAndClear submits the message to s when the Handler is enabled and
// returns the Handler to its pool. The Handler must not be used after.
func (h *Handler) LogAndClear(s Sink, level core.Level, id core.EventID, err error) {
	if !h.enabled {
		return
	}
	s.LogTemplate(level, id, err, string(h.buf), h.args)
	h.release()
}

func (h *Handler) release() {
	h.enabled = false
	h.args = nil
	if cap(h.buf) > 64*1024 { // Don't keep very large buffers
		return
	}
	h.buf = h.buf[:0]
	handlerPool.Put(h)
}
