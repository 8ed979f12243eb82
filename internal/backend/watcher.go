package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/menu-admin/internal/menu"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindMenu Kind = iota
)

// minPollGap bounds how often the menu API can be hit regardless of the
// configured interval.
const minPollGap = 250 * time.Millisecond

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Fetcher is the part of the menu gateway the watcher needs.
type Fetcher interface {
	Menu(ctx context.Context) (menu.Snapshot, error)
}

// Watcher polls the menu API at a fixed interval and publishes events.
type Watcher struct {
	api      Fetcher
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that fetches the full menu every interval.
// The first fetch happens immediately.
func NewWatcher(api Fetcher, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		api:      api,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
		refresh:  make(chan struct{}, 1),
	}

	w.startMenuPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks the poller for an extra fetch now. Requests made while one is
// already queued are merged, and fetches never come closer together than
// minPollGap.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. The poller exits after its current fetch.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startMenuPoller() {
	throttle := newThrottle(minPollGap)
	w.wg.Add(1)
	go w.poll(KindMenu, func(ctx context.Context) (interface{}, error) {
		throttle.wait()
		return w.api.Menu(ctx)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	interval := w.interval
	if interval < minPollGap {
		interval = minPollGap
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-w.refresh:
			if !emit() {
				return
			}
		}
	}
}
