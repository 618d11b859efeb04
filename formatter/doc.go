// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-owned buffer. Handlers
// check for the optional interfaces at construction time.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// all three. Entries built from a message template carry the rendered
// message plus one field per placeholder; Config.IncludeTemplate adds
// the template itself. A non-zero event id and an attached error are
// always written.
//
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
