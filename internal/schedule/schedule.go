package schedule

import (
	"sort"
	"time"
)

// Handle cancels a repeating task. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler queues callbacks against a host clock.
type Scheduler interface {
	// After runs fn once, d from now. It cannot be cancelled.
	After(d time.Duration, fn func())
	// Every runs fn each interval until the returned handle is cancelled.
	Every(interval time.Duration, fn func()) Handle
}

// Manual is a deterministic Scheduler whose clock only moves when Advance is
// called. Due callbacks run on the caller's goroutine in deadline order; ties
// run in the order they were scheduled.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	seq       uint64
	every     time.Duration
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

// NewManual returns a Manual clock positioned at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now reports the elapsed simulated time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) {
	m.push(d, 0, fn)
}

// Every implements Scheduler.
func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return m.push(interval, interval, fn)
}

// Pending returns the number of live tasks still queued.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that comes
// due on the way. Callbacks may schedule further work; anything that lands
// inside the window also runs.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		if next.every > 0 {
			next.at += next.every
			m.seq++
			next.seq = m.seq
		} else {
			next.cancelled = true
		}
		next.fn()
		m.compact()
	}
	m.now = target
}

func (m *Manual) push(delay, every time.Duration, fn func()) *manualTask {
	if delay < 0 {
		delay = 0
	}
	m.seq++
	t := &manualTask{at: m.now + delay, seq: m.seq, every: every, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (m *Manual) nextDue(limit time.Duration) *manualTask {
	live := make([]*manualTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		if !t.cancelled && t.at <= limit {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (m *Manual) compact() {
	out := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			out = append(out, t)
		}
	}
	m.tasks = out
}
