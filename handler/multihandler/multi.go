package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers     []handler.Handler
	recycleEntry bool // true when every child supports entry recycling
}

// NewMultiHandler creates a new multi-handler. nil handlers are skipped.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     make([]handler.Handler, 0, len(handlers)),
		recycleEntry: true,
	}
	for _, h := range handlers {
		if h == nil {
			continue
		}
		m.handlers = append(m.handlers, h)
		if rc, ok := h.(interface{ CanRecycleEntry() bool }); !ok || !rc.CanRecycleEntry() {
			m.recycleEntry = false
		}
	}
	return m
}

// Handle sends the entry to every handler, even after one fails. The
// returned error combines all failures.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(entry))
	}
	return err
}

// CanRecycleEntry returns true if the caller can recycle the entry after Handle returns.
// This is safe when all child handlers process entries synchronously.
func (h *MultiHandler) CanRecycleEntry() bool {
	return h.recycleEntry
}

// Close closes all handlers and combines their errors.
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
