package handler

import (
	"sync"
	"testing"

	"github.com/philipp01105/lazylog/core"
)

func TestStats(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.IncrementProcessed(core.InfoLevel)
			}
		}()
	}
	wg.Wait()

	s.IncrementProcessed(core.CriticalLevel)
	s.IncrementProcessed(core.NoneLevel) // ignored
	s.IncrementFailed()

	if got := s.GetProcessed(core.InfoLevel); got != 800 {
		t.Errorf("GetProcessed(Info) = %d, want 800", got)
	}
	if got := s.GetProcessed(core.NoneLevel); got != 0 {
		t.Errorf("GetProcessed(None) = %d, want 0", got)
	}

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 801 {
		t.Errorf("ProcessedTotal = %d, want 801", snap.ProcessedTotal)
	}
	if snap.Processed[core.CriticalLevel] != 1 {
		t.Errorf("Processed[Critical] = %d, want 1", snap.Processed[core.CriticalLevel])
	}
	if snap.FailedTotal != 1 {
		t.Errorf("FailedTotal = %d, want 1", snap.FailedTotal)
	}

	s.Reset()
	if got := s.GetTotalProcessed(); got != 0 {
		t.Errorf("GetTotalProcessed() after Reset = %d, want 0", got)
	}
}
