package core

import (
	"errors"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{NoneLevel, "NONE"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Enabled(t *testing.T) {
	tests := []struct {
		min   Level
		level Level
		want  bool
	}{
		{InfoLevel, DebugLevel, false},
		{InfoLevel, InfoLevel, true},
		{InfoLevel, CriticalLevel, true},
		{TraceLevel, TraceLevel, true},
		{TraceLevel, NoneLevel, false},
		{NoneLevel, CriticalLevel, false},
	}

	for _, tt := range tests {
		if got := tt.min.Enabled(tt.level); got != tt.want {
			t.Errorf("%v.Enabled(%v) = %v, want %v", tt.min, tt.level, got, tt.want)
		}
	}
}

func TestEventID_String(t *testing.T) {
	tests := []struct {
		id   EventID
		want string
	}{
		{EventID{}, "0"},
		{EventID{ID: 7}, "7"},
		{EventID{Name: "Startup"}, "Startup"},
		{EventID{ID: 1, Name: "TimeEvent"}, "TimeEvent(1)"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("EventID.String() = %q, want %q", got, tt.want)
		}
	}
	if !(EventID{}).IsZero() {
		t.Error("zero EventID should report IsZero")
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	if len(e1.Fields) != 0 {
		t.Errorf("Expected empty fields, got %d", len(e1.Fields))
	}

	e1.Message = "test"
	e1.Template = "{test}"
	e1.EventID = EventID{ID: 3}
	e1.Err = errors.New("boom")
	e1.Fields = append(e1.Fields, Field{Key: "test", Str: "value"})

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}

	if e2.Message != "" || e2.Template != "" {
		t.Errorf("Expected empty message and template after pool reset, got %q / %q", e2.Message, e2.Template)
	}
	if !e2.EventID.IsZero() || e2.Err != nil {
		t.Errorf("Expected cleared event id and error, got %v / %v", e2.EventID, e2.Err)
	}
	if len(e2.Fields) != 0 {
		t.Errorf("Expected empty fields after pool reset, got %d", len(e2.Fields))
	}
}

func TestCallerOutside(t *testing.T) {
	wrapped := func() (uintptr, CallerInfo) {
		return CallerOutside(1)
	}
	pc, caller := wrapped()
	if pc == 0 || !caller.Defined {
		t.Fatal("CallerOutside() returned undefined CallerInfo")
	}
	if caller.ShortFile != "entry_test.go" {
		t.Errorf("ShortFile = %q, want entry_test.go", caller.ShortFile)
	}
	if !strings.HasSuffix(caller.Function, ".TestCallerOutside") {
		t.Errorf("Function = %q, want TestCallerOutside", caller.Function)
	}

	// Test files are never internal, even when their package is.
	_, caller = CallerOutside(0, FuncPackage(caller.Function))
	if !strings.HasSuffix(caller.Function, ".TestCallerOutside") {
		t.Errorf("Function = %q, want TestCallerOutside", caller.Function)
	}
}

func TestFuncPackage(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"github.com/philipp01105/lazylog/interp.(*Handler).LogAndClear", "github.com/philipp01105/lazylog/interp"},
		{"github.com/philipp01105/lazylog/logger.TestX.func1", "github.com/philipp01105/lazylog/logger"},
		{"github.com/philipp01105/lazylog/interp.Log[...]", "github.com/philipp01105/lazylog/interp"},
		{"runtime.goexit", "runtime"},
		{"main.main", "main"},
		{"gopkg.in/yaml%2ev3.Unmarshal", "gopkg.in/yaml.v3"},
	}
	for _, tt := range tests {
		if got := FuncPackage(tt.name); got != tt.want {
			t.Errorf("FuncPackage(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
