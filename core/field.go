package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// FieldOf builds a Field for an arbitrary value, choosing the compact
// numeric representation for the common scalar types.
func FieldOf(key string, val interface{}) Field {
	switch v := val.(type) {
	case string:
		return Field{Key: key, Type: StringType, Str: v}
	case int:
		return Field{Key: key, Type: IntType, Int64: int64(v)}
	case int8:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int16:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int32:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int64:
		return Field{Key: key, Type: Int64Type, Int64: v}
	case float32:
		return Field{Key: key, Type: Float64Type, Float64: float64(v)}
	case float64:
		return Field{Key: key, Type: Float64Type, Float64: v}
	case bool:
		var b int64
		if v {
			b = 1
		}
		return Field{Key: key, Type: BoolType, Int64: b}
	case time.Time:
		return Field{Key: key, Type: TimeType, Int64: v.UnixNano()}
	case time.Duration:
		return Field{Key: key, Type: DurationType, Int64: int64(v)}
	case error:
		return Field{Key: key, Type: ErrorType, Str: v.Error()}
	default:
		return Field{Key: key, Type: AnyType, Any: val}
	}
}

// Value returns the field's value as a Go value of its natural type.
func (f Field) Value() interface{} {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case IntType:
		return int(f.Int64)
	case Int64Type:
		return f.Int64
	case Float64Type:
		return f.Float64
	case BoolType:
		return f.Int64 == 1
	case TimeType:
		return time.Unix(0, f.Int64)
	case DurationType:
		return time.Duration(f.Int64)
	default:
		return f.Any
	}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType:
		return f.Str
	case IntType, Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case DurationType:
		return time.Duration(f.Int64).String()
	case ErrorType:
		return f.Str
	case AnyType:
		if f.Any == nil {
			return "(null)"
		}
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
