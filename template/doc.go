// Package template builds and renders message templates of the form
//
//	The value of i is {++i}
//	It is currently {logTime:HH:mm:ss}!
//	Done in {elapsed,8:F2} ms
//
// A hole is written "{name[,alignment][:format]}"; literal braces are
// doubled. The building side (AppendEscaped, AppendName,
// AppendPlaceholder) is used by the interp package while a message is
// assembled. The rendering side (Parse, Render, Bind) is used by sinks
// that need the final text or the name/value pairs.
//
// Values are turned into text by a Provider. Invariant understands the
// usual numeric specs ("000", "D4", "X8", "N2", "F3", "P1", "#,##0.00"),
// .NET style date patterns ("yyyy-MM-dd HH:mm:ss.fff") and fmt verbs
// ("%08.3f"). Locale adds the number conventions of a language via
// golang.org/x/text.
package template
