package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/ticker"
)

func TestSchedulerQueuesTicks(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(time.Second, func() { fired++ })

	if s.Live() != 1 {
		t.Fatalf("Live() = %d, want 1", s.Live())
	}
	if s.Drain() == nil {
		t.Fatal("Every should queue a tick command")
	}
	if s.Drain() != nil {
		t.Error("Drain should empty the queue")
	}

	s.Fire(TickMsg{TimerID: 1})
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
	if s.Drain() == nil {
		t.Error("a live timer should queue its next tick")
	}
}

func TestSchedulerDropsStaleTicks(t *testing.T) {
	s := NewScheduler()
	fired := 0
	h := s.Every(time.Second, func() { fired++ })
	s.Drain()

	h.Stop()
	h.Stop()
	s.Fire(TickMsg{TimerID: 1})

	if fired != 0 {
		t.Errorf("stopped timer fired %d times", fired)
	}
	if s.Live() != 0 {
		t.Errorf("Live() = %d, want 0", s.Live())
	}
	if s.Drain() != nil {
		t.Error("a stale tick should not queue anything")
	}
}

func TestSchedulerStopInsideCallback(t *testing.T) {
	s := NewScheduler()
	var h ticker.Handle
	h = s.Every(time.Second, func() { h.Stop() })
	s.Drain()

	s.Fire(TickMsg{TimerID: 1})

	if s.Drain() != nil {
		t.Error("a timer stopped by its own callback should not be rescheduled")
	}
}

func TestSchedulerReplacedTimerGetsNewID(t *testing.T) {
	s := NewScheduler()
	var calls []string
	first := s.Every(time.Second, func() { calls = append(calls, "first") })
	first.Stop()
	s.Every(time.Second, func() { calls = append(calls, "second") })

	s.Fire(TickMsg{TimerID: 1})
	s.Fire(TickMsg{TimerID: 2})

	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v, want [second]", calls)
	}
}
