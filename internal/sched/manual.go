// README: Deterministic Scheduler for tests; time moves only via Advance.
package sched

import (
	"sync"
	"time"
)

// Manual never touches the wall clock. Advance runs every callback that falls
// due within the window, in schedule order, synchronously on the caller's
// goroutine. Callbacks may schedule new work or stop handles re-entrantly.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m       *Manual
	due     time.Duration
	period  time.Duration // zero for one-shot
	seq     int
	fn      func()
	stopped bool
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) Once(d time.Duration, fn func()) Handle {
	return m.add(d, 0, fn)
}

func (m *Manual) Every(d time.Duration, fn func()) Handle {
	return m.add(d, d, fn)
}

// Advance moves virtual time forward by d, firing due callbacks in order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		t := m.nextDueLocked(target)
		if t == nil {
			break
		}
		m.now = t.due
		if t.period > 0 {
			t.due += t.period
			t.seq = m.seq
			m.seq++
		} else {
			t.stopped = true
		}
		fn := t.fn
		// Run outside the lock: the callback may call back into the
		// scheduler or into services that do.
		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}
	m.now = target
	m.compactLocked()
	m.mu.Unlock()
}

// Now reports the current virtual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) add(d, period time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{m: m, due: m.now + d, period: period, seq: m.seq, fn: fn}
	m.seq++
	m.tasks = append(m.tasks, t)
	return t
}

// nextDueLocked returns the live task with the smallest (due, seq) at or
// before target, so same-instant tasks fire in scheduling order.
func (m *Manual) nextDueLocked(target time.Duration) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compactLocked() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live
}

func (t *manualTask) Stop() {
	t.m.mu.Lock()
	t.stopped = true
	t.m.mu.Unlock()
}
