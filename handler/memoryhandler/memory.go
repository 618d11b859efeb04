package memoryhandler

import (
	"sync"

	"github.com/philipp01105/lazylog/core"
)

// MemoryHandler keeps a copy of every entry it handles. It is safe for
// concurrent use.
type MemoryHandler struct {
	mu      sync.Mutex
	entries []core.Entry
}

// New creates an empty memory handler.
func New() *MemoryHandler {
	return &MemoryHandler{}
}

// Handle stores a copy of entry, fields included.
func (h *MemoryHandler) Handle(entry *core.Entry) error {
	e := *entry
	e.Fields = append([]core.Field(nil), entry.Fields...)

	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
	return nil
}

// CanRecycleEntry returns true because Handle keeps a copy.
func (h *MemoryHandler) CanRecycleEntry() bool {
	return true
}

// Entries returns the stored entries in arrival order.
func (h *MemoryHandler) Entries() []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]core.Entry(nil), h.entries...)
}

// Len returns the number of stored entries.
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Last returns the most recent entry.
func (h *MemoryHandler) Last() (core.Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return core.Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Reset drops all stored entries.
func (h *MemoryHandler) Reset() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

// Close does nothing; stored entries stay readable.
func (h *MemoryHandler) Close() error {
	return nil
}
