package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"String field", Field{Type: StringType, Str: "hello"}, "hello"},
		{"Int field", Field{Type: IntType, Int64: 42}, "42"},
		{"Int64 field", Field{Type: Int64Type, Int64: 1234567890}, "1234567890"},
		{"Bool field (true)", Field{Type: BoolType, Int64: 1}, "true"},
		{"Bool field (false)", Field{Type: BoolType, Int64: 0}, "false"},
		{"Float64 field", Field{Type: Float64Type, Float64: 3.14}, "3.14"},
		{"Duration field", Field{Type: DurationType, Int64: int64(5 * time.Second)}, "5s"},
		{"Error field", Field{Type: ErrorType, Str: "an error occurred"}, "an error occurred"},
		{"Nil any field", Field{Type: AnyType}, "(null)"},
		{"Any field", Field{Type: AnyType, Any: []int{1, 2}}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldOf(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tests := []struct {
		name string
		val  interface{}
		typ  FieldType
	}{
		{"string", "x", StringType},
		{"int", 1, IntType},
		{"int32", int32(1), Int64Type},
		{"int64", int64(1), Int64Type},
		{"float32", float32(1.5), Float64Type},
		{"float64", 1.5, Float64Type},
		{"bool", true, BoolType},
		{"time", now, TimeType},
		{"duration", time.Second, DurationType},
		{"error", errors.New("e"), ErrorType},
		{"struct", struct{}{}, AnyType},
		{"nil", nil, AnyType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FieldOf("k", tt.val)
			if f.Key != "k" {
				t.Errorf("Key = %q, want k", f.Key)
			}
			if f.Type != tt.typ {
				t.Errorf("Type = %v, want %v", f.Type, tt.typ)
			}
		})
	}
}

func TestField_Value(t *testing.T) {
	if got := FieldOf("i", 7).Value(); got != 7 {
		t.Errorf("int Value() = %v (%T), want 7", got, got)
	}
	if got := FieldOf("b", true).Value(); got != true {
		t.Errorf("bool Value() = %v, want true", got)
	}
	if got := FieldOf("d", time.Minute).Value(); got != time.Minute {
		t.Errorf("duration Value() = %v, want 1m", got)
	}
	now := time.Unix(0, 1700000000123456789)
	if got := FieldOf("t", now).Value().(time.Time); !got.Equal(now) {
		t.Errorf("time Value() = %v, want %v", got, now)
	}
}

func BenchmarkFieldStringValue(b *testing.B) {
	fields := []Field{
		{Type: StringType, Str: "test"},
		{Type: IntType, Int64: 42},
		{Type: BoolType, Int64: 1},
		{Type: Float64Type, Float64: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = f.StringValue()
		}
	}
}
