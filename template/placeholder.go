package template

import (
	"strconv"
	"strings"
)

// Placeholder describes one hole of a message while it is being built.
// The zero Alignment and the empty Format mean "absent".
type Placeholder struct {
	// Expr is the source text of the captured value, used as the
	// placeholder name when Format does not name it explicitly.
	Expr      string
	Alignment int
	// Format is the value's format spec. Everything after its last ':'
	// is taken as the placeholder name, so "HH:mm:ss:logTime" names the
	// placeholder logTime with format HH:mm:ss.
	Format string
}

// AppendEscaped appends s to buf, doubling every '{' and '}' so the
// result stays literal when parsed as a template.
func AppendEscaped(buf []byte, s string) []byte {
	for {
		i := strings.IndexAny(s, "{}")
		if i < 0 {
			return append(buf, s...)
		}
		buf = append(buf, s[:i+1]...)
		buf = append(buf, s[i])
		s = s[i+1:]
	}
}

// AppendName appends a placeholder name to buf, doubling '{'.
//
// A '}' cannot be represented in a name: the scan stops at the first
// one and drops it together with the part of the name not yet copied.
// "a{b}c" therefore becomes "a{{" and "a}b" becomes "".
func AppendName(buf []byte, name string) []byte {
	for {
		i := strings.IndexAny(name, "{}")
		if i < 0 {
			return append(buf, name...)
		}
		if name[i] == '}' {
			return buf
		}
		buf = append(buf, name[:i+1]...)
		buf = append(buf, '{')
		name = name[i+1:]
	}
}

// AppendPlaceholder appends "{name[,alignment][:format]}" for p to buf.
// pos is the positional index used as name when neither the format nor
// Expr provide one.
func AppendPlaceholder(buf []byte, p Placeholder, pos int) []byte {
	buf = append(buf, '{')

	format := p.Format
	i := strings.LastIndexByte(format, ':')
	if i >= 0 && i != len(format)-1 {
		buf = AppendName(buf, format[i+1:])
		format = format[:i]
	} else {
		if i >= 0 {
			// trailing ':' names nothing
			format = format[:i]
		}
		if p.Expr != "" {
			buf = AppendName(buf, p.Expr)
		} else {
			buf = strconv.AppendInt(buf, int64(pos), 10)
		}
	}

	if p.Alignment != 0 {
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(p.Alignment), 10)
	}
	if format != "" {
		buf = append(buf, ':')
		buf = AppendEscaped(buf, format)
	}
	return append(buf, '}')
}
