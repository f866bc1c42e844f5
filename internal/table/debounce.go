package table

import (
	"sync"
	"time"
)

// Debouncer delays keyed actions until their input has been quiet for the
// window. A new trigger for a key replaces the pending action. A zero
// window runs actions immediately.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingAction
}

type pendingAction struct {
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer with the given quiescence window
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pendingAction),
	}
}

// Window returns the quiescence window
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger schedules fn under key, replacing any pending action for key
func (d *Debouncer) Trigger(key string, fn func()) {
	if d.window <= 0 {
		d.Cancel(key)
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}
	action := &pendingAction{fn: fn}
	action.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		current, ok := d.pending[key]
		if !ok || current != action {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = action
}

// Cancel drops the pending action for key
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
}

// Flush runs every pending action now
func (d *Debouncer) Flush() {
	d.mu.Lock()
	actions := make([]func(), 0, len(d.pending))
	for key, p := range d.pending {
		p.timer.Stop()
		actions = append(actions, p.fn)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, fn := range actions {
		fn()
	}
}

// Pending reports how many actions are waiting
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every pending action
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}
