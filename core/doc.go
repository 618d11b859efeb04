// Package core defines the shared types used across lazylog.
//
// It provides the Level type for severity filtering, the EventID that
// classifies an event, the Entry type that represents a single log
// event, and the Field type for zero-allocation structured key-value
// pairs.
//
// An Entry produced from a message template carries both the rendered
// Message and the original Template, and one Field per named
// placeholder, so handlers can emit either form.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handler has consumed it.
package core
