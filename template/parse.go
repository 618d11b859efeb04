package template

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// OriginalFormatKey is the name under which Bind reports the unrendered
// template.
const OriginalFormatKey = "{OriginalFormat}"

// NullValue is rendered for nil arguments.
const NullValue = "(null)"

// Token is one piece of a parsed template: either literal text or a hole.
type Token struct {
	Literal string
	Hole    bool
	// Raw is the hole exactly as it appeared, braces included.
	Raw       string
	Name      string
	Alignment int
	Format    string
}

// NamedArg pairs a placeholder name with the argument bound to it.
type NamedArg struct {
	Name  string
	Value any
}

// Parse splits format into literal and hole tokens. "{{" and "}}" in
// literal text stand for single braces. A '{' without a closing '}' is
// kept as literal text.
//
// Inside a hole "{{" is an escaped brace and a later "}}" balances it;
// any other '}' closes the hole, so "{x}}}" is the hole x followed by a
// literal '}'.
func Parse(format string) []Token {
	var (
		toks []Token
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			toks = append(toks, Token{Literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end := closingBrace(format, i+1)
			if end < 0 {
				lit.WriteString(format[i:])
				i = len(format)
				continue
			}
			flush()
			toks = append(toks, parseHole(format[i+1:end], format[i:end+1]))
			i = end + 1
		case '}':
			lit.WriteByte('}')
			if i+1 < len(format) && format[i+1] == '}' {
				i += 2
			} else {
				i++
			}
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return toks
}

// closingBrace returns the index of the '}' that closes the hole whose
// content starts at from, or -1. A "}}" only counts as an escaped brace
// while it balances an earlier "{{" of the same hole.
func closingBrace(s string, from int) int {
	open := 0
	for j := from; j < len(s); {
		switch s[j] {
		case '{':
			if j+1 < len(s) && s[j+1] == '{' {
				open++
				j += 2
				continue
			}
			j++
		case '}':
			if open > 0 && j+1 < len(s) && s[j+1] == '}' {
				open--
				j += 2
				continue
			}
			return j
		default:
			j++
		}
	}
	return -1
}

func parseHole(content, raw string) Token {
	tok := Token{Hole: true, Raw: raw}

	nameEnd := strings.IndexAny(content, ",:")
	if nameEnd < 0 {
		tok.Name = unescape(strings.TrimSpace(content))
		return tok
	}
	tok.Name = unescape(strings.TrimSpace(content[:nameEnd]))
	rest := content[nameEnd:]

	if rest[0] == ',' {
		rest = rest[1:]
		alignEnd := strings.IndexByte(rest, ':')
		alignText := rest
		if alignEnd >= 0 {
			alignText = rest[:alignEnd]
			rest = rest[alignEnd:]
		} else {
			rest = ""
		}
		if n, err := strconv.Atoi(strings.TrimSpace(alignText)); err == nil {
			tok.Alignment = n
		}
	}
	if rest != "" && rest[0] == ':' {
		tok.Format = unescape(rest[1:])
	}
	return tok
}

func unescape(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}
	s = strings.ReplaceAll(s, "{{", "{")
	return strings.ReplaceAll(s, "}}", "}")
}

// Render substitutes args into format. The i-th hole takes args[i]
// whatever its name; holes without an argument are kept verbatim.
// A nil provider means Invariant.
func Render(format string, args []any, p Provider) string {
	if p == nil {
		p = Invariant
	}
	var (
		b []byte
		n int
	)
	for _, tok := range Parse(format) {
		if !tok.Hole {
			b = append(b, tok.Literal...)
			continue
		}
		if n >= len(args) {
			b = append(b, tok.Raw...)
			n++
			continue
		}
		s := NullValue
		if args[n] != nil {
			s = p.FormatValue(args[n], tok.Format)
		}
		b = AppendAligned(b, s, tok.Alignment)
		n++
	}
	return string(b)
}

// Bind pairs the hole names of format with args, in order, and appends
// the OriginalFormatKey pair. Surplus holes or arguments are dropped.
func Bind(format string, args []any) []NamedArg {
	out := make([]NamedArg, 0, len(args)+1)
	n := 0
	for _, tok := range Parse(format) {
		if !tok.Hole {
			continue
		}
		if n >= len(args) {
			break
		}
		out = append(out, NamedArg{Name: tok.Name, Value: args[n]})
		n++
	}
	return append(out, NamedArg{Name: OriginalFormatKey, Value: format})
}

// AppendAligned appends s padded with spaces to |alignment| runes.
// Positive alignment pads on the left, negative on the right.
func AppendAligned(buf []byte, s string, alignment int) []byte {
	if alignment == 0 {
		return append(buf, s...)
	}
	width := alignment
	if width < 0 {
		width = -width
	}
	pad := width - utf8.RuneCountInString(s)
	if alignment > 0 {
		buf = AppendSpaces(buf, pad)
	}
	buf = append(buf, s...)
	if alignment < 0 {
		buf = AppendSpaces(buf, pad)
	}
	return buf
}

const spaces = "                                "

// AppendSpaces appends n spaces to buf; n < 1 appends nothing.
func AppendSpaces(buf []byte, n int) []byte {
	for n > 0 {
		k := min(n, len(spaces))
		buf = append(buf, spaces[:k]...)
		n -= k
	}
	return buf
}
