package story

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The viewer owns at most one pending timer.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the runtime timer wheel.
type ClockScheduler struct{}

func NewClockScheduler() Scheduler {
	return ClockScheduler{}
}

func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler only fires timers when told to. It drives the viewer
// deterministically in tests and replays.
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu      sync.Mutex
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Pending counts timers that are neither stopped nor fired.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		t.mu.Lock()
		if !t.stopped && !t.fired {
			n++
		}
		t.mu.Unlock()
	}
	return n
}

// Scheduled returns how many timers were ever requested.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// LastDuration is the delay of the most recently scheduled timer.
func (s *ManualScheduler) LastDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return 0
	}
	return s.timers[len(s.timers)-1].d
}

// Fire runs every pending timer, oldest first, and reports how many ran.
// Callbacks run without the scheduler lock so they may schedule again.
func (s *ManualScheduler) Fire() int {
	s.mu.Lock()
	var due []*manualTimer
	for _, t := range s.timers {
		t.mu.Lock()
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
		t.mu.Unlock()
	}
	s.mu.Unlock()

	for _, t := range due {
		t.f()
	}
	return len(due)
}

// FireStale runs a timer callback even though it was stopped, the way a
// runtime timer can fire concurrently with Stop.
func (s *ManualScheduler) FireStale(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	t.f()
}
