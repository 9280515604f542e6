package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid repeated triggers for the same key into a
// single effective action: the last function passed within the window
// wins. It is explicit timer-based coalescing scoped to the owning
// component's lifetime, so no stale closures outlive a screen.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]*pending
}

type pending struct {
	timer *time.Timer
	fn    func()
}

func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pending),
	}
}

// Trigger schedules fn to run after the window elapses. Re-triggering
// the same key before then resets the timer and replaces the function.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		p.fn = fn
		p.timer.Reset(d.window)
		return
	}
	p := &pending{fn: fn}
	p.timer = time.AfterFunc(d.window, func() { d.fire(key) })
	d.pending[key] = p
}

// Flush runs a pending action for key immediately, for one-shot
// callers that do not want to wait out the window.
func (d *Debouncer) Flush(key string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
	d.mu.Unlock()
	if ok {
		p.fn()
	}
}

// Stop cancels everything still pending.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}

func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	if ok {
		p.fn()
	}
}
