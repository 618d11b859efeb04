package zapsink

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/lazylog/core"
	"github.com/philipp01105/lazylog/interp"
	"github.com/philipp01105/lazylog/template"
)

func TestSink_LogsTemplate(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	log := interp.New(New(zap.New(obs)))
	boom := errors.New("boom")

	i := 0
	log.InfoEvent(core.EventID{ID: 3, Name: "Probe"}, boom, func(h *interp.Handler) {
		h.Literal("The value of i is ")
		i++
		h.Append("++i", i)
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	require.Equal(t, "The value of i is 1", entry.Message)

	ctx := entry.ContextMap()
	require.EqualValues(t, 1, ctx["++i"])
	require.Equal(t, "The value of i is {++i}", ctx[template.OriginalFormatKey])
	require.EqualValues(t, 3, ctx[EventIDKey])
	require.Equal(t, "Probe", ctx[EventNameKey])
	require.Equal(t, "boom", ctx["error"])
}

func TestSink_LevelGate(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	sink := New(zap.New(obs))
	log := interp.New(sink)

	called := false
	log.Info(func(h *interp.Handler) { called = true })
	require.False(t, called)
	require.Zero(t, logs.Len())

	require.False(t, sink.Enabled(core.NoneLevel))
	require.True(t, sink.Enabled(core.CriticalLevel))

	log.Critical(func(h *interp.Handler) { h.Literal("down") })
	require.Equal(t, 1, logs.Len())
	require.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestSink_Provider(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	log := interp.New(New(zap.New(obs), WithProvider(template.Invariant)))

	log.Trace(func(h *interp.Handler) {
		h.Literal("padded ")
		h.AppendAligned("n", 7, 4, "000")
	})

	require.Equal(t, 1, logs.Len())
	require.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	require.Equal(t, "padded  007", logs.All()[0].Message)
}

func TestSink_Caller(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	sink := New(zap.New(obs, zap.AddCaller()))
	msg := func(h *interp.Handler) { h.Literal("where") }

	interp.New(sink).Info(msg)
	interp.Log(sink, core.WarnLevel, msg)
	interp.LogEvent(sink, core.ErrorLevel, core.EventID{ID: 1}, nil, msg)
	h := interp.NewHandler(sink, core.InfoLevel)
	h.Literal("manual")
	h.LogAndClear(sink, core.InfoLevel, core.EventID{}, nil)
	sink.LogTemplate(core.InfoLevel, core.EventID{}, nil, "direct", nil)

	require.Equal(t, 5, logs.Len())
	for i, entry := range logs.All() {
		caller := entry.Caller
		require.True(t, caller.Defined, "entry %d", i)
		require.True(t, strings.HasSuffix(caller.File, "zap_test.go"), "entry %d: %s", i, caller.File)
		require.True(t, strings.HasSuffix(caller.Function, ".TestSink_Caller"), "entry %d: %s", i, caller.Function)
		require.NotZero(t, caller.PC)
	}
}

func TestSink_NoCallerWithoutAddCaller(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	interp.Log(New(zap.New(obs)), core.InfoLevel, func(h *interp.Handler) { h.Literal("m") })

	require.Equal(t, 1, logs.Len())
	require.False(t, logs.All()[0].Caller.Defined)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.TraceLevel, zapcore.DebugLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarnLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.CriticalLevel, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		if got := Level(tt.level); got != tt.want {
			t.Errorf("Level(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
