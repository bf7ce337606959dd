package ui

import (
	"testing"
	"time"
)

func TestTeaScheduler_AfterRunsOnce(t *testing.T) {
	s := newTeaScheduler()
	runs := 0
	s.After(500*time.Millisecond, func() { runs++ })

	if got := s.pending(); got != 1 {
		t.Fatalf("pending = %d, want 1", got)
	}
	if s.drain() == nil {
		t.Fatalf("drain returned nil with a task queued")
	}
	if s.drain() != nil {
		t.Fatalf("second drain should be empty")
	}

	s.fire(timerMsg{id: 1})
	s.fire(timerMsg{id: 1})
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
	if got := s.pending(); got != 0 {
		t.Fatalf("pending = %d, want 0", got)
	}
	if s.drain() != nil {
		t.Fatalf("one-shot task should not re-arm")
	}
}

func TestTeaScheduler_EveryRearmsUntilCancelled(t *testing.T) {
	s := newTeaScheduler()
	runs := 0
	h := s.Every(3*time.Second, func() { runs++ })
	s.drain()

	for i := 0; i < 3; i++ {
		s.fire(timerMsg{id: 1})
		if s.drain() == nil {
			t.Fatalf("tick %d: repeating task did not re-arm", i)
		}
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want 3", runs)
	}

	h.Cancel()
	s.fire(timerMsg{id: 1})
	if runs != 3 {
		t.Fatalf("runs after cancel = %d, want 3", runs)
	}
	if s.drain() != nil {
		t.Fatalf("cancelled task should not re-arm")
	}
}

func TestTeaScheduler_StaleTickAfterRestartIsIgnored(t *testing.T) {
	s := newTeaScheduler()
	var fired []string
	first := s.Every(time.Second, func() { fired = append(fired, "first") })
	first.Cancel()
	s.Every(time.Second, func() { fired = append(fired, "second") })

	// The first task's timer is still in flight and arrives after the restart.
	s.fire(timerMsg{id: 1})
	s.fire(timerMsg{id: 2})

	if len(fired) != 1 || fired[0] != "second" {
		t.Fatalf("fired = %v, want [second]", fired)
	}
}

func TestTeaScheduler_TaskMayScheduleMore(t *testing.T) {
	s := newTeaScheduler()
	ran := false
	s.After(time.Millisecond, func() {
		s.After(time.Millisecond, func() { ran = true })
	})
	s.drain()

	s.fire(timerMsg{id: 1})
	if s.drain() == nil {
		t.Fatalf("nested After was not queued")
	}
	s.fire(timerMsg{id: 2})
	if !ran {
		t.Fatalf("nested task did not run")
	}
}
