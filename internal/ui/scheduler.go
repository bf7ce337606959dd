package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/schedule"
)

// timerMsg fires a task registered with teaScheduler.
type timerMsg struct {
	id uint64
}

// teaScheduler implements schedule.Scheduler on top of tea.Tick so every
// callback runs inside Model.Update, on the same thread as key handling.
// Scheduling only queues commands; drain hands them to Bubble Tea.
type teaScheduler struct {
	nextID uint64
	tasks  map[uint64]*teaTask
	queued []tea.Cmd
}

type teaTask struct {
	fn    func()
	every time.Duration
}

type teaHandle struct {
	s  *teaScheduler
	id uint64
}

func (h teaHandle) Cancel() {
	delete(h.s.tasks, h.id)
}

var _ schedule.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]*teaTask)}
}

func (s *teaScheduler) After(d time.Duration, fn func()) {
	s.add(d, 0, fn)
}

func (s *teaScheduler) Every(interval time.Duration, fn func()) schedule.Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return teaHandle{s: s, id: s.add(interval, interval, fn)}
}

func (s *teaScheduler) add(delay, every time.Duration, fn func()) uint64 {
	s.nextID++
	id := s.nextID
	s.tasks[id] = &teaTask{fn: fn, every: every}
	s.queued = append(s.queued, fireAfter(delay, id))
	return id
}

// fire runs the task behind msg. Cancelled tasks are dropped silently;
// repeating tasks are re-armed before running so the cadence holds.
func (s *teaScheduler) fire(msg timerMsg) {
	task, ok := s.tasks[msg.id]
	if !ok {
		return
	}
	if task.every > 0 {
		s.queued = append(s.queued, fireAfter(task.every, msg.id))
	} else {
		delete(s.tasks, msg.id)
	}
	task.fn()
}

// drain returns the commands queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) pending() int {
	return len(s.tasks)
}

func fireAfter(d time.Duration, id uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}
