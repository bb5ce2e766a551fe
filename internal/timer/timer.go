// Package timer implements the rest countdown used between sets. The timer
// can run with or without an active session; finishing or cancelling a
// session resets it.
package timer

import (
	"sync"
	"time"
)

// DefaultDuration is the countdown length used when none is configured.
const DefaultDuration = 3 * time.Minute

// State describes what the timer is currently doing.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateDone    State = "done"
)

// Snapshot is a point-in-time view of the timer, safe to serialize.
type Snapshot struct {
	State     State         `json:"state"`
	Duration  time.Duration `json:"duration"`
	Remaining time.Duration `json:"remaining"`
	Fraction  float64       `json:"fraction"`
}

// RestTimer counts down from a configurable duration and signals completion
// exactly once per run on Done. Zero value is not usable, use New.
type RestTimer struct {
	mu        sync.Mutex
	duration  time.Duration
	remaining time.Duration
	state     State
	deadline  time.Time
	stop      chan struct{}
	done      chan struct{}
	now       func() time.Time
}

func New(duration time.Duration) *RestTimer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &RestTimer{
		duration:  duration,
		remaining: duration,
		state:     StateIdle,
		done:      make(chan struct{}, 1),
		now:       time.Now,
	}
}

// Done delivers one signal each time a countdown reaches zero.
func (t *RestTimer) Done() <-chan struct{} {
	return t.done
}

// SetDuration changes the countdown length. A running or paused timer is
// reset to the new duration.
func (t *RestTimer) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.duration = d
	t.remaining = d
	t.state = StateIdle
}

// Start begins a fresh countdown from the configured duration. Starting a
// running timer restarts it.
func (t *RestTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.remaining = t.duration
	t.startLocked()
}

// Pause freezes the countdown, keeping the remaining time.
func (t *RestTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning {
		return
	}
	t.remaining = t.deadline.Sub(t.now())
	if t.remaining < 0 {
		t.remaining = 0
	}
	t.stopLocked()
	t.state = StatePaused
}

// Resume continues a paused countdown.
func (t *RestTimer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePaused {
		return
	}
	t.startLocked()
}

// Reset stops the timer and restores the full duration without starting.
func (t *RestTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.remaining = t.duration
	t.state = StateIdle
}

// Snapshot reports the timer's current state and remaining time.
func (t *RestTimer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	remaining := t.remaining
	if t.state == StateRunning {
		remaining = t.deadline.Sub(t.now())
		if remaining < 0 {
			remaining = 0
		}
	}
	frac := 0.0
	if t.duration > 0 {
		frac = float64(remaining) / float64(t.duration)
	}
	return Snapshot{State: t.state, Duration: t.duration, Remaining: remaining, Fraction: frac}
}

func (t *RestTimer) startLocked() {
	t.deadline = t.now().Add(t.remaining)
	t.state = StateRunning
	stop := make(chan struct{})
	t.stop = stop
	go t.wait(t.remaining, stop)
}

func (t *RestTimer) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *RestTimer) wait(d time.Duration, stop chan struct{}) {
	tm := time.NewTimer(d)
	defer tm.Stop()
	select {
	case <-stop:
		return
	case <-tm.C:
	}
	t.mu.Lock()
	if t.stop == stop {
		t.stop = nil
		t.state = StateDone
		t.remaining = 0
		select {
		case t.done <- struct{}{}:
		default:
		}
	}
	t.mu.Unlock()
}
