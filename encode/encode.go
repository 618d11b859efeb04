package encode

import (
	"fmt"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/philipp01105/lazylog/template"
)

// Builder renders text for one GetBytes call. It is only valid inside
// the build function it was passed to.
type Builder struct {
	buf []byte
	p   template.Provider
}

var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{buf: make([]byte, 0, 256)}
	},
}

// GetBytes renders the text assembled by build and returns it encoded
// with enc. A nil enc means UTF-8. Values are formatted with
// template.Invariant.
func GetBytes(enc encoding.Encoding, build func(b *Builder)) ([]byte, error) {
	return GetBytesWith(enc, nil, build)
}

// GetBytesWith is GetBytes with a format provider. A nil provider means
// template.Invariant; any other provider sees every appended value.
func GetBytesWith(enc encoding.Encoding, p template.Provider, build func(b *Builder)) ([]byte, error) {
	if p == nil {
		p = template.Invariant
	}
	b := builderPool.Get().(*Builder)
	b.p = p
	defer b.release()

	build(b)

	if enc == nil || enc == unicode.UTF8 {
		out := make([]byte, len(b.buf))
		copy(out, b.buf)
		return out, nil
	}
	out, err := enc.NewEncoder().Bytes(b.buf)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return out, nil
}

// Literal appends s unchanged.
func (b *Builder) Literal(s string) {
	b.buf = append(b.buf, s...)
}

// Append appends the formatted value of v.
func (b *Builder) Append(v any) {
	b.AppendAligned(v, 0, "")
}

// AppendFormat appends v formatted with a format spec.
func (b *Builder) AppendFormat(v any, format string) {
	b.AppendAligned(v, 0, format)
}

// AppendAligned appends v formatted with format and padded with spaces
// to |alignment| runes; positive alignment pads on the left. A nil v
// appends only the padding.
func (b *Builder) AppendAligned(v any, alignment int, format string) {
	if v == nil {
		if alignment < 0 {
			alignment = -alignment
		}
		b.buf = template.AppendSpaces(b.buf, alignment)
		return
	}
	if r, ok := v.([]rune); ok {
		v = string(r)
	}
	b.buf = template.AppendAligned(b.buf, b.p.FormatValue(v, format), alignment)
}

// Len returns the number of UTF-8 bytes rendered so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) release() {
	b.p = nil
	if cap(b.buf) > 64*1024 { // Don't keep very large buffers
		return
	}
	b.buf = b.buf[:0]
	builderPool.Put(b)
}
