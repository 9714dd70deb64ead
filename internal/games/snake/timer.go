package snake

import "time"

// maxCatchUpTicks bounds how many steps a single Update may run after a
// stalled frame, so a long pause does not replay as a burst of moves.
const maxCatchUpTicks = 3

// tickTimer is the fixed-interval movement clock. It is a cooperative
// timer: time only passes through Advance, and Due hands out at most one
// tick per call, so a step always finishes before the next one is due.
type tickTimer struct {
	interval time.Duration
	pending  time.Duration
	running  bool
}

func newTickTimer(interval time.Duration) tickTimer {
	return tickTimer{interval: interval}
}

// Start (re)arms the timer with no accumulated time.
func (t *tickTimer) Start() {
	t.pending = 0
	t.running = true
}

// Stop cancels the timer. Due reports false until the next Start.
func (t *tickTimer) Stop() {
	t.pending = 0
	t.running = false
}

// Running reports whether the timer is armed.
func (t *tickTimer) Running() bool {
	return t.running
}

// Advance adds elapsed wall-clock time.
func (t *tickTimer) Advance(elapsed time.Duration) {
	if !t.running || elapsed <= 0 {
		return
	}
	t.pending = min(t.pending+elapsed, t.interval*maxCatchUpTicks)
}

// Due consumes one interval and reports whether a tick should run now.
func (t *tickTimer) Due() bool {
	if !t.running || t.pending < t.interval {
		return false
	}
	t.pending -= t.interval
	return true
}
