// Package logger is the public API of lazylog. Most users only need to
// import this package.
//
// A Logger is immutable after construction. The fields, the level and
// the handler are set once via the Builder and never modified, so a
// Logger is safe for concurrent use without locking on the read path.
//
// The package initializes a default Logger (InfoLevel, text format to
// stdout) in init(). The package-level functions Info, Error, Warnf,
// LogEx, etc. delegate to this default instance:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, use the Builder or a YAML Config:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// The Ex methods take a build function instead of a message. It runs
// only when the level is enabled, and the literals and values it
// appends become a message template plus one field per placeholder:
//
//	log.InfoEx(func(h *interp.Handler) {
//	    h.Literal("request ")
//	    h.Append("id", id)
//	    h.Literal(" took ")
//	    h.AppendFormat("elapsed", elapsed, "F1")
//	})
//
// The entry's Message is the template rendered with the logger's
// template.Provider and its Template is "request {id} took
// {elapsed:F1}". A Logger is an interp.Sink, so interp.Log works with
// it directly.
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
package logger
