// Package zerologsink lets lazily built messages be written by zerolog.
package zerologsink
