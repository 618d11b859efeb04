// Package consolehandler provides a console handler that writes
// formatted log entries to any io.Writer (default: os.Stdout).
//
// Entries are written synchronously before Handle returns. An
// uncontended handler formats into its own buffer under a TryLock;
// parallel callers format into pooled buffers and only serialize the
// Write call.
//
// With the default ColorAuto mode a TextFormatter gets ANSI level
// colors when the writer is a terminal.
package consolehandler
