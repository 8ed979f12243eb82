package state

import (
	"sync"

	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menu"
)

// SnapshotStore holds the single in-memory copy of the menu. The snapshot is
// only ever replaced wholesale.
type SnapshotStore interface {
	Snapshot() (menu.Snapshot, bool)
	Replace(menu.Snapshot)
	Loaded() bool
}

type snapshotStore struct {
	mu       sync.RWMutex
	snapshot menu.Snapshot
	loaded   bool
}

func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{}
}

// Snapshot returns a copy of the current menu. The boolean is false until the
// first successful load.
func (s *snapshotStore) Snapshot() (menu.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone(), s.loaded
}

func (s *snapshotStore) Replace(snap menu.Snapshot) {
	s.mu.Lock()
	s.snapshot = snap.Clone()
	s.loaded = true
	s.mu.Unlock()
	events.Store.Replaced(len(snap.Categories), len(snap.Items))
}

func (s *snapshotStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
