package dispatcher

import (
	"github.com/atomicstack/menu-admin/internal/backend"
	"github.com/atomicstack/menu-admin/internal/menu"
	"github.com/atomicstack/menu-admin/internal/state"
)

type Result struct {
	MenuUpdated bool
}

// Dispatcher routes watcher events into the snapshot store.
type Dispatcher struct {
	store state.SnapshotStore
}

func New(store state.SnapshotStore) *Dispatcher {
	return &Dispatcher{store: store}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindMenu:
		if snapshot, ok := evt.Data.(menu.Snapshot); ok {
			d.store.Replace(snapshot)
			res.MenuUpdated = true
		}
	}
	return res
}
