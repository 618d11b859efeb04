// Package slogsink lets lazily built messages be written through
// log/slog. Combined with package sloghandler the template, error and
// placeholder fields survive the trip through slog unchanged.
package slogsink
