package menu

import "testing"

func itemIDs(items []Item) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterItemsSearchIsCaseInsensitive(t *testing.T) {
	items := []Item{{ID: 1, NameUZ: "Burger", NameRU: "Бургер"}}
	got := FilterItems(items, Filter{Query: "bur"})
	if len(got) != 1 {
		t.Fatalf("expected bur to match Burger, got %v", got)
	}
	got = FilterItems(items, Filter{Query: "БУР"})
	if len(got) != 1 {
		t.Fatalf("expected RU name match, got %v", got)
	}
}

func TestFilterItemsCombinesCategoryAndQuery(t *testing.T) {
	snap := sampleSnapshot()
	got := FilterItems(snap.Items, Filter{Category: "burgers", Query: "chee"})
	if want := []int64{2}; !equalIDs(itemIDs(got), want) {
		t.Fatalf("unexpected ids %v, want %v", itemIDs(got), want)
	}
	got = FilterItems(snap.Items, Filter{Query: "chee"})
	if want := []int64{2, 3}; !equalIDs(itemIDs(got), want) {
		t.Fatalf("unexpected ids %v, want %v", itemIDs(got), want)
	}
}

func TestFilterItemsKeepsServerOrder(t *testing.T) {
	snap := sampleSnapshot()
	got := FilterItems(snap.Items, Filter{})
	if want := []int64{1, 2, 3, 4}; !equalIDs(itemIDs(got), want) {
		t.Fatalf("unexpected ids %v, want %v", itemIDs(got), want)
	}
	got = FilterItems(snap.Items, Filter{Category: "drinks"})
	if want := []int64{3, 4}; !equalIDs(itemIDs(got), want) {
		t.Fatalf("unexpected ids %v, want %v", itemIDs(got), want)
	}
}

func TestFilterItemsQueryIsNotTrimmed(t *testing.T) {
	items := []Item{{ID: 1, NameUZ: "Burger"}}
	if got := FilterItems(items, Filter{Query: " bur"}); len(got) != 0 {
		t.Fatalf("expected leading space to be significant, got %v", got)
	}
}

func TestFilterItemsUnknownCategoryMatchesNothing(t *testing.T) {
	snap := sampleSnapshot()
	if got := FilterItems(snap.Items, Filter{Category: "desserts"}); len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
}
