package state

import (
	"testing"

	"github.com/atomicstack/menu-admin/internal/menu"
)

func TestSnapshotStoreStartsEmpty(t *testing.T) {
	store := NewSnapshotStore()
	if _, ok := store.Snapshot(); ok {
		t.Fatalf("expected no snapshot before the first load")
	}
	if store.Loaded() {
		t.Fatalf("expected store to report not loaded")
	}
}

func TestSnapshotStoreClonesOnReadAndWrite(t *testing.T) {
	store := NewSnapshotStore()
	snap := menu.Snapshot{
		Categories: []menu.Category{{Slug: "burgers", NameUZ: "Burgerlar"}},
		Items:      []menu.Item{{ID: 1, CategorySlug: "burgers", NameUZ: "Burger"}},
	}
	store.Replace(snap)
	snap.Items[0].NameUZ = "mutated"

	got, ok := store.Snapshot()
	if !ok {
		t.Fatalf("expected snapshot after replace")
	}
	if got.Items[0].NameUZ != "Burger" {
		t.Fatalf("store must not alias the caller's slice, got %q", got.Items[0].NameUZ)
	}
	got.Categories[0].Slug = "changed"
	again, _ := store.Snapshot()
	if again.Categories[0].Slug != "burgers" {
		t.Fatalf("reads must be isolated, got %q", again.Categories[0].Slug)
	}
}

func TestSnapshotStoreReplaceIsWholesale(t *testing.T) {
	store := NewSnapshotStore()
	store.Replace(menu.Snapshot{Items: []menu.Item{{ID: 1}, {ID: 2}}})
	store.Replace(menu.Snapshot{Items: []menu.Item{{ID: 3}}})
	got, _ := store.Snapshot()
	if len(got.Items) != 1 || got.Items[0].ID != 3 {
		t.Fatalf("expected replaced items, got %+v", got.Items)
	}
}
