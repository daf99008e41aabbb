package ticker

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls. Time never moves
// on its own, which makes timer behaviour deterministic in tests and in
// headless replays.
type Manual struct {
	now    time.Duration
	nextID uint64
	timers []*manualTimer
}

type manualTimer struct {
	id      uint64
	period  time.Duration
	due     time.Duration
	fn      func()
	stopped bool
	owner   *Manual
}

var _ Scheduler = (*Manual)(nil)

// NewManual creates a scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every registers fn to fire each period, starting one period from now.
// A non-positive period is treated as one nanosecond.
func (m *Manual) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Nanosecond
	}
	m.nextID++
	t := &manualTimer{
		id:     m.nextID,
		period: period,
		due:    m.now + period,
		fn:     fn,
		owner:  m,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d and fires every callback that falls due,
// in due order. A callback may stop or start timers.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.due
		t.due += t.period
		t.fn()
	}
	m.now = target
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Live returns the number of armed timers.
func (m *Manual) Live() int {
	return len(m.timers)
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due == m.timers[j].due {
			return m.timers[i].id < m.timers[j].id
		}
		return m.timers[i].due < m.timers[j].due
	})
	if t := m.timers[0]; t.due <= limit {
		return t
	}
	return nil
}

func (m *Manual) remove(t *manualTimer) {
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.owner.remove(t)
}
