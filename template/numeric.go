package template

import (
	"math"
	"strconv"
	"strings"
)

// formatInt applies a numeric format spec to a signed integer of the
// given bit size. ok is false when the spec is not understood.
func formatInt(n int64, bits int, format string) (string, bool) {
	return formatInteger(n < 0, absInt(n), uint64(n)&bitMask(bits), format)
}

func formatUint(n uint64, format string) (string, bool) {
	return formatInteger(false, n, n, format)
}

// formatInteger renders an integer from its magnitude so values beyond
// 2^53 keep every digit. raw is the bit pattern printed by hex specs.
func formatInteger(negative bool, abs, raw uint64, format string) (string, bool) {
	digits := strconv.FormatUint(abs, 10)
	if p, ok := parsePattern(format); ok {
		return p.finish(negative, digits, strings.Repeat("0", p.minFrac)), true
	}
	letter, prec, ok := standardSpec(format)
	if !ok {
		return "", false
	}
	switch letter {
	case 'D', 'd':
		return sign(negative) + zeroPad(digits, prec), true
	case 'X', 'x':
		s := zeroPad(strconv.FormatUint(raw, 16), prec)
		if letter == 'X' {
			s = strings.ToUpper(s)
		}
		return s, true
	case 'F', 'f':
		return sign(negative) + digits + zeroFraction(digitsOr(prec, 2)), true
	case 'N', 'n':
		return sign(negative) + group(digits) + zeroFraction(digitsOr(prec, 2)), true
	case 'P', 'p':
		if abs != 0 {
			digits += "00"
		}
		return sign(negative) + group(digits) + zeroFraction(digitsOr(prec, 2)) + " %", true
	case 'G', 'g':
		if prec <= 0 || prec >= len(digits) {
			return sign(negative) + digits, true
		}
	}
	f := float64(abs)
	if negative {
		f = -f
	}
	return formatFloat(f, format)
}

func bitMask(bits int) uint64 {
	if bits <= 0 || bits >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(bits) - 1
}

func zeroFraction(n int) string {
	if n <= 0 {
		return ""
	}
	return "." + strings.Repeat("0", n)
}

func formatFloat(f float64, format string) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	if p, ok := parsePattern(format); ok {
		return p.apply(f), true
	}
	letter, digits, ok := standardSpec(format)
	if !ok {
		return "", false
	}
	switch letter {
	case 'F', 'f':
		return strconv.FormatFloat(f, 'f', digitsOr(digits, 2), 64), true
	case 'N', 'n':
		s := strconv.FormatFloat(math.Abs(f), 'f', digitsOr(digits, 2), 64)
		return sign(f < 0) + group(s), true
	case 'E', 'e':
		return strconv.FormatFloat(f, letter, digitsOr(digits, 6), 64), true
	case 'G', 'g':
		return strconv.FormatFloat(f, 'g', digits, 64), true
	case 'P', 'p':
		s := strconv.FormatFloat(math.Abs(f*100), 'f', digitsOr(digits, 2), 64)
		return sign(f < 0) + group(s) + " %", true
	}
	return "", false
}

// pattern is a custom numeric format made of '0', '#', ',' and at most
// one '.', such as "000", "#,##0" or "0.0#".
type pattern struct {
	minInt   int
	minFrac  int
	maxFrac  int
	grouping bool
}

func parsePattern(format string) (pattern, bool) {
	var (
		p      pattern
		inFrac bool
	)
	for i := 0; i < len(format); i++ {
		switch format[i] {
		case '0':
			if inFrac {
				p.minFrac++
				p.maxFrac++
			} else {
				p.minInt++
			}
		case '#':
			if inFrac {
				p.maxFrac++
			}
		case ',':
			if inFrac {
				return pattern{}, false
			}
			p.grouping = true
		case '.':
			if inFrac {
				return pattern{}, false
			}
			inFrac = true
		default:
			return pattern{}, false
		}
	}
	return p, true
}

// apply renders f with the pattern. Optional fraction digits ('#') are
// dropped when they are trailing zeros.
func (p pattern) apply(f float64) string {
	s := strconv.FormatFloat(math.Abs(f), 'f', p.maxFrac, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	for len(fracPart) > p.minFrac && fracPart[len(fracPart)-1] == '0' {
		fracPart = fracPart[:len(fracPart)-1]
	}
	return p.finish(f < 0, intPart, fracPart)
}

// finish pads, groups and signs an already rounded integer part and
// fraction.
func (p pattern) finish(negative bool, intPart, fracPart string) string {
	if intPart == "0" && p.minInt == 0 {
		intPart = ""
	}
	intPart = zeroPad(intPart, p.minInt)
	if p.grouping {
		intPart = group(intPart)
	}
	s := intPart
	if fracPart != "" {
		s += "." + fracPart
	}
	return sign(negative && strings.ContainsAny(s, "123456789")) + s
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// group inserts ',' between thousands of the integer part of s.
func group(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func sign(negative bool) string {
	if negative {
		return "-"
	}
	return ""
}

func absInt(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
