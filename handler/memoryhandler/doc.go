// Package memoryhandler provides a handler that records entries in
// memory, for tests and for inspecting what a logger produced.
package memoryhandler
