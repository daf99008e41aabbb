// Package tui provides the Bubble Tea integration for blockfall.
// It handles the terminal UI loop, input mapping, and the render components.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/ticker"
)

// TickMsg is sent when a scheduled timer fires.
type TickMsg struct {
	TimerID int
	Time    time.Time
}

// Scheduler implements ticker.Scheduler on top of tea.Tick. Timer
// callbacks run inside Update, so the presenter only ever sees one event
// at a time. Commands created while handling a message are collected and
// returned by Drain.
type Scheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	id     int
	period time.Duration
	fn     func()
	owner  *Scheduler
}

var _ ticker.Scheduler = (*Scheduler)(nil)

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*teaTimer)}
}

// Every implements ticker.Scheduler.
func (s *Scheduler) Every(period time.Duration, fn func()) ticker.Handle {
	s.nextID++
	t := &teaTimer{id: s.nextID, period: period, fn: fn, owner: s}
	s.timers[t.id] = t
	s.pending = append(s.pending, t.cmd())
	return t
}

// Fire runs the callback of the timer msg belongs to and schedules its
// next tick. Messages of stopped timers are dropped.
func (s *Scheduler) Fire(msg TickMsg) {
	t, ok := s.timers[msg.TimerID]
	if !ok {
		return
	}
	t.fn()
	if _, live := s.timers[t.id]; live {
		s.pending = append(s.pending, t.cmd())
	}
}

// Live returns the number of running timers.
func (s *Scheduler) Live() int {
	return len(s.timers)
}

// Drain returns every command queued since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (t *teaTimer) cmd() tea.Cmd {
	id := t.id
	return tea.Tick(t.period, func(now time.Time) tea.Msg {
		return TickMsg{TimerID: id, Time: now}
	})
}

func (t *teaTimer) Stop() {
	delete(t.owner.timers, t.id)
}
