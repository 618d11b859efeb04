package handler

import (
	"sync/atomic"

	"github.com/philipp01105/lazylog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they process.
type StatsProvider interface {
	Stats() Snapshot
}

// Stats tracks handler statistics
type Stats struct {
	// processed counts per level, indexed by core.Level
	processed [core.NoneLevel]atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level >= 0 && level < core.NoneLevel {
		s.processed[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if level < 0 || level >= core.NoneLevel {
		return 0
	}
	return s.processed[level].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var n uint64
	for i := range s.processed {
		n += s.processed[i].Load()
	}
	return n
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:   make(map[core.Level]uint64, core.NoneLevel),
		FailedTotal: s.failed.Load(),
	}
	for level := core.TraceLevel; level < core.NoneLevel; level++ {
		n := s.GetProcessed(level)
		snap.Processed[level] = n
		snap.ProcessedTotal += n
	}
	return snap
}
