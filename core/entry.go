package core

import (
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for the most detailed diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures that need immediate attention
	CriticalLevel
	// NoneLevel disables logging when used as a minimum level.
	// It is never a valid level for an entry.
	NoneLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether an entry at level passes a minimum of l.
func (l Level) Enabled(level Level) bool {
	return level != NoneLevel && level >= l
}

// EventID identifies a class of log event. The zero value means no id.
type EventID struct {
	ID   int
	Name string
}

// IsZero reports whether the id carries neither number nor name.
func (e EventID) IsZero() bool {
	return e.ID == 0 && e.Name == ""
}

// String returns "name(id)", "id" or "name" depending on what is set.
func (e EventID) String() string {
	switch {
	case e.Name == "":
		return strconv.Itoa(e.ID)
	case e.ID == 0:
		return e.Name
	default:
		return e.Name + "(" + strconv.Itoa(e.ID) + ")"
	}
}

// Entry represents a log entry with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	// Template is the unrendered message template, empty for plain messages.
	Template string
	EventID  EventID
	Err      error
	Fields   []Field
	Caller   CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Clear field values so pooled entries do not pin logged arguments
	clear(e.Fields)
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Template = ""
	e.EventID = EventID{}
	e.Err = nil
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// maxCallerDepth bounds the stack walk of CallerOutside.
const maxCallerDepth = 32

// CallerOutside returns the first caller whose function is not declared
// in one of the packages named by internal, along with the program
// counter identifying it. Functions in _test.go files always count as
// callers. skip is counted as in runtime.Caller, so 0 starts at the
// function calling CallerOutside.
func CallerOutside(skip int, internal ...string) (uintptr, CallerInfo) {
	var pcs [maxCallerDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	for i := 0; i < n; i++ {
		// one pc per logical frame, inlined calls included
		frame, _ := runtime.CallersFrames(pcs[i : i+1]).Next()
		if frame.Function == "" {
			continue
		}
		if !strings.HasSuffix(frame.File, "_test.go") &&
			slices.Contains(internal, FuncPackage(frame.Function)) {
			continue
		}
		return pcs[i], CallerInfo{
			File:      frame.File,
			ShortFile: filepath.Base(frame.File),
			Line:      frame.Line,
			Function:  frame.Function,
			Defined:   true,
		}
	}
	return 0, CallerInfo{}
}

// FuncPackage returns the import path of the package declaring the
// function with the given runtime name, such as
// "example.com/mod/pkg.(*T).Method".
func FuncPackage(name string) string {
	slash := strings.LastIndexByte(name, '/')
	pkg := name
	if dot := strings.IndexByte(name[slash+1:], '.'); dot >= 0 {
		pkg = name[:slash+1+dot]
	}
	// dots in the last path element are escaped, as in "yaml%2ev3"
	if strings.Contains(pkg, "%2e") {
		pkg = strings.ReplaceAll(pkg, "%2e", ".")
	}
	return pkg
}
