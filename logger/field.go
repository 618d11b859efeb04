package logger

import (
	"time"

	"github.com/philipp01105/lazylog/core"
)

// Field helpers for the plain logging methods. Template arguments get
// their fields through core.FieldOf and end up with the same types.

// String creates a string field
func String(key, val string) core.Field { return core.FieldOf(key, val) }

// Int creates an int field
func Int(key string, val int) core.Field { return core.FieldOf(key, val) }

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field { return core.FieldOf(key, val) }

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field { return core.FieldOf(key, val) }

// Bool creates a bool field
func Bool(key string, val bool) core.Field { return core.FieldOf(key, val) }

// Time creates a time field
func Time(key string, val time.Time) core.Field { return core.FieldOf(key, val) }

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field { return core.FieldOf(key, val) }

// Err creates an error field named "error". A nil error gives an empty
// message.
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Type: core.ErrorType}
	}
	return core.FieldOf("error", err)
}

// Any creates a field with any value, keeping it unconverted.
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
