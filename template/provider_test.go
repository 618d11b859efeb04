package template

import (
	"math"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

type temperature float64

func (t temperature) FormatSpec(format string, p Provider) string {
	if format == "F" {
		return p.FormatValue(float64(t)*9/5+32, "0.0") + "°F"
	}
	return p.FormatValue(float64(t), "0.0") + "°C"
}

type upper struct{}

func (upper) FormatValue(v any, format string) string {
	return strings.ToUpper(Invariant.FormatValue(v, format))
}

func TestInvariant_Numbers(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		format string
		want   string
	}{
		{"plain int", 42, "", "42"},
		{"zero pad", 42, "000", "042"},
		{"zero pad negative", -7, "000", "-007"},
		{"zero pad wider than value", 12345, "000", "12345"},
		{"decimal digits", 42, "D5", "00042"},
		{"hex upper", 255, "X4", "00FF"},
		{"hex lower", 255, "x", "ff"},
		{"uint pad", uint8(7), "00", "07"},
		{"grouped int", 1234567, "N0", "1,234,567"},
		{"grouped pattern", 1234567, "#,##0", "1,234,567"},
		{"fixed", 3.14159, "F2", "3.14"},
		{"fixed default", 2.5, "F", "2.50"},
		{"pattern fraction", 3.14159, "0.000", "3.142"},
		{"number", -1234.5, "N2", "-1,234.50"},
		{"percent", 0.256, "P1", "25.6 %"},
		{"exponent", 1234.5, "E2", "1.23E+03"},
		{"fmt verb", 3.5, "%08.3f", "0003.500"},
		{"unknown spec", 42, "ZZZ", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Invariant.FormatValue(tt.v, tt.format); got != tt.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.v, tt.format, got, tt.want)
			}
		})
	}
}

func TestInvariant_LargeAndSizedIntegers(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		format string
		want   string
	}{
		{"max uint64 N0", uint64(math.MaxUint64), "N0", "18,446,744,073,709,551,615"},
		{"max uint64 F2", uint64(math.MaxUint64), "F2", "18446744073709551615.00"},
		{"min int64 N0", int64(math.MinInt64), "N0", "-9,223,372,036,854,775,808"},
		{"max int64 N", int64(math.MaxInt64), "N", "9,223,372,036,854,775,807.00"},
		{"2^53+1 pattern", int64(1<<53 + 1), "#,##0", "9,007,199,254,740,993"},
		{"2^53+1 fraction pattern", int64(1<<53 + 1), "0.00", "9007199254740993.00"},
		{"2^53+1 percent", int64(1<<53 + 1), "P0", "900,719,925,474,099,300 %"},
		{"zero percent", 0, "P1", "0.0 %"},
		{"int general", int64(math.MaxInt64), "G", "9223372036854775807"},
		{"optional fraction on int", 42, "0.##", "42"},
		{"hex int8", int8(-1), "x", "ff"},
		{"hex int16", int16(-2), "X4", "FFFE"},
		{"hex int32", int32(-1), "X", "FFFFFFFF"},
		{"hex int64", int64(-1), "X", "FFFFFFFFFFFFFFFF"},
		{"hex uint64", uint64(math.MaxUint64), "x", "ffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Invariant.FormatValue(tt.v, tt.format); got != tt.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.v, tt.format, got, tt.want)
			}
		})
	}
}

func TestInvariant_OptionalFractionDigits(t *testing.T) {
	tests := []struct {
		v      float64
		format string
		want   string
	}{
		{1.5, "0.##", "1.5"},
		{1.5, "0.0#", "1.5"},
		{1.0, "0.0#", "1.0"},
		{1.234, "0.0#", "1.23"},
		{-0.001, "0.00", "0.00"},
		{-0.5, "#.0", "-.5"},
	}

	for _, tt := range tests {
		if got := Invariant.FormatValue(tt.v, tt.format); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.v, tt.format, got, tt.want)
		}
	}
}

func TestInvariant_Values(t *testing.T) {
	if got := Invariant.FormatValue(nil, ""); got != "" {
		t.Errorf("nil = %q, want empty", got)
	}
	if got := Invariant.FormatValue("text", "000"); got != "text" {
		t.Errorf("string = %q, want it unchanged", got)
	}
	if got := Invariant.FormatValue(1500*time.Millisecond, ""); got != "1.5s" {
		t.Errorf("duration = %q, want 1.5s", got)
	}
	if got := Invariant.FormatValue(temperature(20), ""); got != "20.0°C" {
		t.Errorf("formattable = %q, want 20.0°C", got)
	}
	if got := Invariant.FormatValue(temperature(100), "F"); got != "212.0°F" {
		t.Errorf("formattable = %q, want 212.0°F", got)
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2022, time.March, 4, 12, 42, 7, 123456789, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"HH:mm:ss", "12:42:07"},
		{"yyyy-MM-dd", "2022-03-04"},
		{"yy/M/d", "22/3/4"},
		{"HH:mm:ss.fff", "12:42:07.123"},
		{"hh:mm tt", "12:42 PM"},
		{"dddd, dd MMMM yyyy", "Friday, 04 March 2022"},
		{"ddd MMM", "Fri Mar"},
		{"'at' HH\\h", "at 12h"},
		{"T", "12:42:07"},
		{"s", "2022-03-04T12:42:07"},
		{"u", "2022-03-04 12:42:07Z"},
		{"o", "2022-03-04T12:42:07.1234567Z"},
		{"HH:mm K", "12:42 Z"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := FormatTime(ts, tt.format); got != tt.want {
				t.Errorf("FormatTime(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatTime_Offset(t *testing.T) {
	ts := time.Date(2022, 1, 1, 8, 0, 0, 0, time.FixedZone("CET", 3600))
	if got := FormatTime(ts, "HH:mm zzz"); got != "08:00 +01:00" {
		t.Errorf("FormatTime = %q, want 08:00 +01:00", got)
	}
}

func TestLocale(t *testing.T) {
	en := Locale(language.English)
	de := Locale(language.German)

	tests := []struct {
		name   string
		p      Provider
		v      any
		format string
		want   string
	}{
		{"english grouping", en, 1234567, "", "1,234,567"},
		{"english N2", en, 1234.5, "N2", "1,234.50"},
		{"german N2", de, 1234.5, "N2", "1.234,50"},
		{"german F1", de, 1234.56, "F1", "1234,6"},
		{"falls back for patterns", de, 42, "000", "042"},
		{"strings unchanged", de, "Straße", "", "Straße"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.FormatValue(tt.v, tt.format); got != tt.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.v, tt.format, got, tt.want)
			}
		})
	}
}

func TestRender_CustomProvider(t *testing.T) {
	got := Render("{name} is {state}", []any{"disk", "full"}, upper{})
	if got != "DISK is FULL" {
		t.Errorf("Render() = %q, want %q", got, "DISK is FULL")
	}
}
