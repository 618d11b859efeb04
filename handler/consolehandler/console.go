package consolehandler

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/formatter"
	"github.com/philipp01105/lazylog/handler"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("consolehandler: handler closed")

// ColorMode selects when text output gets ANSI level colors.
type ColorMode uint8

const (
	// ColorAuto colors text output when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colors text output regardless of the writer.
	ColorAlways
	// ColorNever never colors output.
	ColorNever
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
// Uses the handler's main mu to serialize all writes.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Color controls ANSI level colors of a TextFormatter (default: ColorAuto)
	Color ColorMode
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking for parallel log entries.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// ConsoleHandler writes formatted entries synchronously. It is safe for
// concurrent use.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool // true if writer is safe for concurrent Write calls
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer (single lock)
	lw              lockedWriter
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool // *bytes.Buffer for the contended path
	closeOnce       sync.Once
	closed          chan struct{}
}

var _ handler.StatsProvider = (*ConsoleHandler)(nil)

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	cfg.Formatter = applyColor(cfg.Formatter, cfg.Color, cfg.Writer)
}

// applyColor returns f with its Color setting resolved against mode.
// Only text formatters are affected; the caller's formatter is copied,
// never modified.
func applyColor(f formatter.Formatter, mode ColorMode, w io.Writer) formatter.Formatter {
	tf, ok := f.(*formatter.TextFormatter)
	if !ok {
		return f
	}
	want := tf.Color
	switch mode {
	case ColorAlways:
		want = true
	case ColorNever:
		want = false
	default:
		want = want || isTerminal(w)
	}
	if want == tf.Color {
		return f
	}
	c := *tf
	c.Color = want
	return &c
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	// Pre-allocate lockedWriter for lock-minimal write path
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}

	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
		h.parBufPool = sync.Pool{
			New: func() interface{} {
				b := new(bytes.Buffer)
				b.Grow(256)
				return b
			},
		}
	}

	return h
}

// Formatter returns the formatter in use, with colors resolved.
func (h *ConsoleHandler) Formatter() formatter.Formatter {
	return h.formatter
}

// Handle formats and writes an entry.
//
// Uses TryLock on mu to access the handler-owned buffer when uncontended.
// When contended and a BufferFormatter is available, formats into a pooled
// buffer outside the lock, then writes under mu. Otherwise falls through to
// the WriterFormatter or generic Formatter paths.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return ErrClosed
	default:
	}

	err := h.write(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		if h.mu.TryLock() {
			h.syncBuf.Reset()
			h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
			_, err := h.writer.Write(h.syncBuf.Bytes())
			h.mu.Unlock()
			return err
		}

		// Parallel fallback: format in pool buffer outside lock, then
		// write under mu (or directly for concurrent-safe writers).
		pb := h.parBufPool.Get().(*bytes.Buffer)
		pb.Reset()
		h.bufferFormatter.FormatEntry(entry, pb)
		var err error
		if h.concurrentSafe {
			_, err = h.writer.Write(pb.Bytes())
		} else {
			_, err = h.lw.Write(pb.Bytes())
		}
		if pb.Cap() <= 64*1024 {
			h.parBufPool.Put(pb)
		}
		return err
	}

	if h.writerFormatter != nil {
		if h.concurrentSafe {
			return h.writerFormatter.FormatTo(entry, h.writer)
		}
		return h.writerFormatter.FormatTo(entry, &h.lw)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
		return err
	}
	_, err = h.lw.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// CanRecycleEntry returns true because entries are written before Handle returns.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close marks the handler closed. The writer is not closed.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() { close(h.closed) })
	return nil
}
