// Package handler provides the Handler interface that receives log
// entries, plus the shared Stats counters.
//
// Implementations live in subpackages:
//
//   - consolehandler writes formatted entries to an io.Writer (default:
//     stdout), coloring levels when the writer is a terminal.
//   - multihandler fans one entry out to several handlers.
//   - memoryhandler keeps copies of entries for tests and inspection.
//   - sloghandler adapts a Handler to log/slog.Handler, so slog records
//     (including message templates) reach the same pipeline.
//
// Handlers process entries synchronously. A handler whose
// CanRecycleEntry method returns true lets the logger return the entry
// to its pool once Handle returns.
package handler
