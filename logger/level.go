package logger

import (
	"strings"

	"github.com/philipp01105/lazylog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	NoneLevel     = core.NoneLevel
)

// ParseLevel converts a string to a Level. Unknown names map to
// InfoLevel.
func ParseLevel(s string) Level {
	level, ok := lookupLevel(s)
	if !ok {
		return InfoLevel
	}
	return level
}

func lookupLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO", "INFORMATION":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL", "FATAL":
		return CriticalLevel, true
	case "NONE", "OFF":
		return NoneLevel, true
	default:
		return InfoLevel, false
	}
}
