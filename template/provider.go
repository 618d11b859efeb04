package template

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Provider turns a value and its format spec into text.
//
// Invariant and the providers returned by Locale pass strings through
// unchanged. Any other implementation is treated as a custom formatter
// and is consulted for every value, strings included.
type Provider interface {
	FormatValue(v any, format string) string
}

// Formattable is implemented by values that render their own format
// specs.
type Formattable interface {
	FormatSpec(format string, p Provider) string
}

// Invariant formats values the same way regardless of locale.
var Invariant Provider = invariant{}

type invariant struct{}

func (invariant) FormatValue(v any, format string) string {
	return formatInvariant(v, format, Invariant)
}

func formatInvariant(v any, format string, self Provider) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []rune:
		return string(x)
	case Formattable:
		return x.FormatSpec(format, self)
	case time.Time:
		if format == "" {
			return x.Format(time.RFC3339)
		}
		if format[0] != '%' {
			return FormatTime(x, format)
		}
	case time.Duration:
		if format == "" {
			return x.String()
		}
	}

	if format == "" {
		return fmt.Sprint(v)
	}
	if format[0] == '%' {
		return fmt.Sprintf(format, v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := formatInt(rv.Int(), rv.Type().Bits(), format); ok {
			return s
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if s, ok := formatUint(rv.Uint(), format); ok {
			return s
		}
	case reflect.Float32, reflect.Float64:
		if s, ok := formatFloat(rv.Float(), format); ok {
			return s
		}
	}
	return fmt.Sprint(v)
}

// Locale returns a Provider that renders numbers with the grouping and
// decimal conventions of tag. Non-numeric values are formatted as by
// Invariant.
func Locale(tag language.Tag) Provider {
	return &locale{printer: message.NewPrinter(tag)}
}

type locale struct {
	printer *message.Printer
}

func (l *locale) FormatValue(v any, format string) string {
	if f, ok := v.(Formattable); ok {
		return f.FormatSpec(format, l)
	}
	if !isNumber(v) || (format != "" && format[0] == '%') {
		return formatInvariant(v, format, l)
	}

	letter, digits, ok := standardSpec(format)
	switch {
	case format == "":
		return l.printer.Sprint(number.Decimal(v))
	case !ok:
		return formatInvariant(v, format, l)
	case letter == 'N' || letter == 'n':
		d := digitsOr(digits, 2)
		return l.printer.Sprint(number.Decimal(v, number.MinFractionDigits(d), number.MaxFractionDigits(d)))
	case letter == 'F' || letter == 'f':
		d := digitsOr(digits, 2)
		return l.printer.Sprint(number.Decimal(v, number.NoSeparator(), number.MinFractionDigits(d), number.MaxFractionDigits(d)))
	case letter == 'P' || letter == 'p':
		d := digitsOr(digits, 2)
		return l.printer.Sprint(number.Percent(v, number.MinFractionDigits(d), number.MaxFractionDigits(d)))
	default:
		return formatInvariant(v, format, l)
	}
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// standardSpec splits a standard numeric spec such as "N2" or "X" into
// its letter and optional precision (-1 when absent).
func standardSpec(format string) (letter byte, digits int, ok bool) {
	if format == "" {
		return 0, -1, false
	}
	c := format[0]
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return 0, -1, false
	}
	if len(format) == 1 {
		return c, -1, true
	}
	n, err := strconv.Atoi(format[1:])
	if err != nil || n < 0 || n > 99 {
		return 0, -1, false
	}
	return c, n, true
}

func digitsOr(digits, def int) int {
	if digits < 0 {
		return def
	}
	return digits
}
