// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, so the standard library's structured logging can
// write through the same handlers and formatters.
//
// Records produced by a message-template sink keep their structure: the
// "{OriginalFormat}" attribute becomes the entry's template and an
// error-valued "error" attribute becomes the entry's error.
package sloghandler
