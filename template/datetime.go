package template

import (
	"strconv"
	"strings"
	"time"
)

// standard single-letter date/time formats, invariant culture
var standardTimeFormats = map[byte]string{
	'd': "MM/dd/yyyy",
	'D': "dddd, dd MMMM yyyy",
	't': "HH:mm",
	'T': "HH:mm:ss",
	'g': "MM/dd/yyyy HH:mm",
	'G': "MM/dd/yyyy HH:mm:ss",
	's': "yyyy'-'MM'-'dd'T'HH':'mm':'ss",
	'u': "yyyy'-'MM'-'dd HH':'mm':'ss'Z'",
}

// FormatTime renders t with a .NET style date/time pattern such as
// "HH:mm:ss" or "yyyy-MM-dd". Single-letter standard formats ("o", "s",
// "T", ...) are expanded first. Unknown letters are copied verbatim;
// text in single or double quotes and characters after '\' are literal.
func FormatTime(t time.Time, format string) string {
	if len(format) == 1 {
		switch format[0] {
		case 'o', 'O':
			return t.Format("2006-01-02T15:04:05.0000000Z07:00")
		case 'r', 'R':
			return t.UTC().Format(time.RFC1123)
		case 'u':
			t = t.UTC()
		}
		if std, ok := standardTimeFormats[format[0]]; ok {
			format = std
		}
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		c := format[i]
		n := 1
		for i+n < len(format) && format[i+n] == c {
			n++
		}
		switch c {
		case 'y':
			switch {
			case n == 1:
				b.WriteString(strconv.Itoa(t.Year() % 100))
			case n == 2:
				b.WriteString(zeroPad(strconv.Itoa(t.Year()%100), 2))
			default:
				b.WriteString(zeroPad(strconv.Itoa(t.Year()), n))
			}
		case 'M':
			switch {
			case n >= 4:
				b.WriteString(t.Month().String())
			case n == 3:
				b.WriteString(t.Month().String()[:3])
			default:
				b.WriteString(zeroPad(strconv.Itoa(int(t.Month())), n))
			}
		case 'd':
			switch {
			case n >= 4:
				b.WriteString(t.Weekday().String())
			case n == 3:
				b.WriteString(t.Weekday().String()[:3])
			default:
				b.WriteString(zeroPad(strconv.Itoa(t.Day()), n))
			}
		case 'H':
			b.WriteString(zeroPad(strconv.Itoa(t.Hour()), min(n, 2)))
		case 'h':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(zeroPad(strconv.Itoa(h), min(n, 2)))
		case 'm':
			b.WriteString(zeroPad(strconv.Itoa(t.Minute()), min(n, 2)))
		case 's':
			b.WriteString(zeroPad(strconv.Itoa(t.Second()), min(n, 2)))
		case 'f', 'F':
			digits := min(n, 9)
			frac := zeroPad(strconv.Itoa(t.Nanosecond()), 9)[:digits]
			if c == 'F' {
				frac = strings.TrimRight(frac, "0")
			}
			b.WriteString(frac)
		case 't':
			ampm := "AM"
			if t.Hour() >= 12 {
				ampm = "PM"
			}
			if n == 1 {
				ampm = ampm[:1]
			}
			b.WriteString(ampm)
		case 'z':
			b.WriteString(formatOffset(t, n))
		case 'K':
			if t.Location() == time.UTC {
				b.WriteByte('Z')
			} else {
				b.WriteString(formatOffset(t, 3))
			}
			n = 1
		case '\'', '"':
			end := strings.IndexByte(format[i+1:], c)
			if end < 0 {
				b.WriteString(format[i+1:])
				return b.String()
			}
			b.WriteString(format[i+1 : i+1+end])
			n = end + 2
		case '\\':
			if i+1 < len(format) {
				b.WriteByte(format[i+1])
			}
			n = 2
		default:
			b.WriteString(format[i : i+n])
		}
		i += n
	}
	return b.String()
}

func formatOffset(t time.Time, n int) string {
	_, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	hours, minutes := off/3600, (off%3600)/60
	switch n {
	case 1:
		return sign + strconv.Itoa(hours)
	case 2:
		return sign + zeroPad(strconv.Itoa(hours), 2)
	default:
		return sign + zeroPad(strconv.Itoa(hours), 2) + ":" + zeroPad(strconv.Itoa(minutes), 2)
	}
}
