package backend

import (
	"sync"
	"time"
)

// throttle enforces a minimum gap between successive fetches.
type throttle struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(time.Duration)

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval, now: time.Now, sleep: time.Sleep}
}

// wait blocks until the gap since the previous call has passed and books the
// next slot.
func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if delay := t.next.Sub(t.now()); delay > 0 {
		t.sleep(delay)
	}
	t.next = t.now().Add(t.interval)
}
