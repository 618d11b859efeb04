// Package interp builds structured log messages lazily.
//
// A message is assembled inside a build function from literal text and
// captured values. Each value becomes a named placeholder in a message
// template and an entry in the argument list, so sinks receive
//
//	"The value of i is {++i}", []any{1}
//
// instead of a pre-formatted string. The build function runs only when
// the sink reports the level enabled: expensive arguments computed
// inside it cost nothing for filtered messages.
//
//	log := interp.New(sink)
//	log.Info(func(h *interp.Handler) {
//		h.Literal("The value of i is ")
//		i++
//		h.Append("++i", i)
//	})
//
// Placeholder names come from the expression text passed to Append, or
// from the part of the format spec after its last ':' ("HH:mm:ss:logTime"
// names the placeholder logTime), or from the placeholder's position.
// A '}' inside an expression name cannot be represented; the name is
// cut at that point.
//
// Handlers are pooled; one Handler serves one message on one goroutine.
package interp
