// README: Manual scheduler tests (due ordering, periodic reschedule, re-entrancy).
package sched

import (
	"testing"
	"time"
)

func TestOnceFiresAtDueTime(t *testing.T) {
	m := NewManual()
	fired := 0
	m.Once(100*time.Millisecond, func() { fired++ })

	m.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatal("fired before due time")
	}
	m.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	m.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("one-shot fired again, fired = %d", fired)
	}
}

func TestStopPreventsFiring(t *testing.T) {
	m := NewManual()
	fired := false
	h := m.Once(10*time.Millisecond, func() { fired = true })
	h.Stop()
	m.Advance(time.Second)
	if fired {
		t.Fatal("stopped task fired")
	}
}

func TestEveryRepeatsUntilStopped(t *testing.T) {
	m := NewManual()
	fired := 0
	h := m.Every(10*time.Millisecond, func() { fired++ })

	m.Advance(35 * time.Millisecond)
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}

	h.Stop()
	m.Advance(100 * time.Millisecond)
	if fired != 3 {
		t.Fatalf("fired after stop, fired = %d", fired)
	}
}

func TestSameInstantRunsInScheduleOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.Once(10*time.Millisecond, func() { order = append(order, "a") })
	m.Once(10*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(10 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
}

func TestCallbackMayScheduleMoreWork(t *testing.T) {
	m := NewManual()
	var hits []time.Duration
	m.Once(10*time.Millisecond, func() {
		hits = append(hits, m.Now())
		m.Once(5*time.Millisecond, func() {
			hits = append(hits, m.Now())
		})
	})

	m.Advance(20 * time.Millisecond)
	if len(hits) != 2 {
		t.Fatalf("hits = %v, want two", hits)
	}
	if hits[0] != 10*time.Millisecond || hits[1] != 15*time.Millisecond {
		t.Fatalf("hits = %v, want [10ms 15ms]", hits)
	}
}

func TestRepeatingTaskMayStopItself(t *testing.T) {
	m := NewManual()
	fired := 0
	var h Handle
	h = m.Every(10*time.Millisecond, func() {
		fired++
		if fired == 2 {
			h.Stop()
		}
	})

	m.Advance(time.Second)
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	m := NewManual()
	fired := false
	m.Once(100*time.Millisecond, func() { fired = true })

	// many small advances must add up to the due time
	for i := 0; i < 10; i++ {
		m.Advance(10 * time.Millisecond)
	}
	if !fired {
		t.Fatal("accumulated advances did not reach the due time")
	}
	if m.Now() != 100*time.Millisecond {
		t.Fatalf("now = %v, want 100ms", m.Now())
	}
}
