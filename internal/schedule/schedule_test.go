package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestManual_AfterRunsInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.After(1500*time.Millisecond, func() { got = append(got, "settle") })
	m.After(500*time.Millisecond, func() { got = append(got, "swap") })
	m.After(500*time.Millisecond, func() { got = append(got, "swap2") })

	m.Advance(499 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("callbacks ran early: %v", got)
	}

	m.Advance(time.Second)
	if diff := cmp.Diff([]string{"swap", "swap2"}, got); diff != "" {
		t.Fatalf("after 1499ms (-want +got):\n%s", diff)
	}

	m.Advance(time.Millisecond)
	if diff := cmp.Diff([]string{"swap", "swap2", "settle"}, got); diff != "" {
		t.Fatalf("after 1500ms (-want +got):\n%s", diff)
	}
	if m.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", m.Pending())
	}
}

func TestManual_EveryRepeatsUntilCancelled(t *testing.T) {
	m := NewManual()
	ticks := 0
	h := m.Every(3*time.Second, func() { ticks++ })

	m.Advance(9 * time.Second)
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}

	h.Cancel()
	h.Cancel()
	m.Advance(30 * time.Second)
	if ticks != 3 {
		t.Fatalf("ticks after cancel = %d, want 3", ticks)
	}
	if m.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", m.Pending())
	}
}

func TestManual_CallbacksScheduledDuringAdvanceRun(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	m.After(time.Second, func() {
		at = append(at, m.Now())
		m.After(time.Second, func() { at = append(at, m.Now()) })
	})

	m.Advance(5 * time.Second)
	if diff := cmp.Diff([]time.Duration{time.Second, 2 * time.Second}, at); diff != "" {
		t.Fatalf("run times (-want +got):\n%s", diff)
	}
	if m.Now() != 5*time.Second {
		t.Fatalf("Now = %v, want 5s", m.Now())
	}
}

func TestManual_EveryCanCancelItself(t *testing.T) {
	m := NewManual()
	ticks := 0
	var h Handle
	h = m.Every(time.Second, func() {
		ticks++
		if ticks == 2 {
			h.Cancel()
		}
	})
	m.Advance(10 * time.Second)
	if ticks != 2 {
		t.Fatalf("ticks = %d, want 2", ticks)
	}
}
