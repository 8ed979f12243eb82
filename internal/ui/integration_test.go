package ui

import (
	"context"
	"testing"

	"github.com/atomicstack/menu-admin/internal/testutil"
)

func TestConsoleAgainstDevServer(t *testing.T) {
	srv := testutil.NewMenuServer(t)
	srv.Seed(t, testutil.SampleMenu())

	h := NewHarness(NewModel(srv.Client(), 120, 40, false, false, nil))
	h.Start()
	if got := len(h.Model().Rendered().Items); got != 4 {
		t.Fatalf("expected seeded items, got %d (alert %q)", got, h.Model().Alert())
	}

	h.Keys("tab", "ctrl+n")
	form := h.Model().Form()
	form.SetValue("name_uz", "Shirinliklar")
	form.SetValue("name_ru", "Десерты")
	h.Keys("ctrl+s")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected modal to close, alert %q", h.Model().Alert())
	}

	h.Keys("tab", "ctrl+n")
	form = h.Model().Form()
	form.SetValue("category_slug", "shirinliklar")
	form.SetValue("name_uz", "Tort")
	form.SetValue("name_ru", "Торт")
	form.SetValue("price", "12abc")
	form.SetValue("image", writeImage(t, "tort.png"))
	h.Keys("ctrl+s")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected item modal to close, alert %q", h.Model().Alert())
	}

	snap, err := srv.Client().Menu(context.Background())
	if err != nil {
		t.Fatalf("fetch menu: %v", err)
	}
	if len(snap.Categories) != 3 || snap.Categories[2].Slug != "shirinliklar" {
		t.Fatalf("unexpected categories %#v", snap.Categories)
	}
	if len(snap.Items) != 5 {
		t.Fatalf("expected five items, got %#v", snap.Items)
	}
	created := snap.Items[4]
	if created.NameUZ != "Tort" || created.Price != 12 || created.ImageURL == "" {
		t.Fatalf("unexpected created item %#v", created)
	}
	if got := len(h.Model().Rendered().Items); got != 5 {
		t.Fatalf("expected view to match server, got %d items", got)
	}

	h.Keys("tab", "end", "ctrl+x", "y")
	snap, err = srv.Client().Menu(context.Background())
	if err != nil {
		t.Fatalf("fetch menu: %v", err)
	}
	if len(snap.Categories) != 2 || len(snap.Items) != 4 {
		t.Fatalf("expected cascade delete on the server, got %#v", snap)
	}
	if got := len(h.Model().Rendered().Items); got != 4 {
		t.Fatalf("expected view to match server, got %d items", got)
	}
}
