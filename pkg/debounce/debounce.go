package debounce

import (
	"sync"
	"time"
)

// Debouncer is a trailing-edge debouncer with a single owned timer. Each
// Trigger cancels and restarts the window, so only the final call within a
// window fires fn. One Debouncer exists per logical saver.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	fn     func()
	timer  *time.Timer
	armed  bool
	closed bool
}

// New builds a debouncer that invokes fn after delay of quiet time.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger (re)arms the window. It reports whether an already armed window was
// collapsed into this one.
func (d *Debouncer) Trigger() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}

	collapsed := d.armed
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = true
	d.timer = time.AfterFunc(d.delay, d.fire)
	return collapsed
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed || !d.armed {
		d.mu.Unlock()
		return
	}
	d.armed = false
	d.mu.Unlock()

	d.fn()
}

// Cancel disarms any pending window without firing and reports whether one
// was armed.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	armed := d.armed
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
	return armed
}

// Close cancels any pending window and rejects further triggers. Idempotent.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed = false
	d.closed = true
}
