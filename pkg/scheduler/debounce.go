package scheduler

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of same-id triggers: scheduling a job id that
// already has a pending timer replaces the timer, so only the last trigger
// in a burst fires.
type debouncer struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
}

func newDebouncer() *debouncer {
	return &debouncer{pending: make(map[string]*time.Timer)}
}

// schedule arranges fn to run after delay under jobID, replacing any pending
// timer for the same id. Returns false after stop.
func (d *debouncer) schedule(jobID string, delay time.Duration, fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	if t, ok := d.pending[jobID]; ok {
		t.Stop()
	}
	d.pending[jobID] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.pending, jobID)
		d.mu.Unlock()
		fn()
	})
	return true
}

// stop cancels every pending timer.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for id, t := range d.pending {
		t.Stop()
		delete(d.pending, id)
	}
}
