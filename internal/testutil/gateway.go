package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/atomicstack/menu-admin/internal/menu"
)

// FakeGateway is an in-memory menu.Gateway that records every call. Calls
// are named "menu", "create-category", "update-category <slug>",
// "delete-category <slug>", "create-item", "update-item <id>",
// "delete-item <id>" and "upload <filename>"; FailOn is keyed by the first
// word of that name.
type FakeGateway struct {
	mu       sync.Mutex
	snapshot menu.Snapshot
	nextID   int64
	calls    []string

	FailOn  map[string]error
	Patches []menu.ItemPatch
	Items   []menu.ItemInput
}

// NewFakeGateway starts from a copy of snap.
func NewFakeGateway(snap menu.Snapshot) *FakeGateway {
	g := &FakeGateway{snapshot: snap.Clone(), FailOn: map[string]error{}}
	for _, it := range snap.Items {
		if it.ID > g.nextID {
			g.nextID = it.ID
		}
	}
	return g
}

func (g *FakeGateway) record(call string) error {
	g.calls = append(g.calls, call)
	return g.FailOn[strings.Fields(call)[0]]
}

// Calls returns the recorded call names in order.
func (g *FakeGateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

// MutatingCalls returns Calls without the "menu" reloads.
func (g *FakeGateway) MutatingCalls() []string {
	var out []string
	for _, c := range g.Calls() {
		if c != "menu" {
			out = append(out, c)
		}
	}
	return out
}

// Snapshot returns the current server-side state.
func (g *FakeGateway) Snapshot() menu.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot.Clone()
}

func (g *FakeGateway) Menu(context.Context) (menu.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("menu"); err != nil {
		return menu.Snapshot{}, err
	}
	return g.snapshot.Clone(), nil
}

func (g *FakeGateway) CreateCategory(_ context.Context, in menu.CategoryInput) (menu.Category, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("create-category"); err != nil {
		return menu.Category{}, err
	}
	slug := strings.ToLower(in.NameUZ)
	if in.Slug != nil {
		slug = *in.Slug
	}
	c := menu.Category{Slug: slug, NameUZ: in.NameUZ, NameRU: in.NameUZ}
	if in.NameRU != nil {
		c.NameRU = *in.NameRU
	}
	g.snapshot.Categories = append(g.snapshot.Categories, c)
	return c, nil
}

func (g *FakeGateway) UpdateCategory(_ context.Context, slug string, in menu.CategoryUpdate) (menu.Category, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("update-category " + slug); err != nil {
		return menu.Category{}, err
	}
	for i := range g.snapshot.Categories {
		c := &g.snapshot.Categories[i]
		if c.Slug != slug {
			continue
		}
		c.NameUZ = in.NameUZ
		c.NameRU = in.NameUZ
		if in.NameRU != nil {
			c.NameRU = *in.NameRU
		}
		return *c, nil
	}
	return menu.Category{}, menu.ErrCategoryNotFound
}

func (g *FakeGateway) DeleteCategory(_ context.Context, slug string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("delete-category " + slug); err != nil {
		return err
	}
	var cats []menu.Category
	for _, c := range g.snapshot.Categories {
		if c.Slug != slug {
			cats = append(cats, c)
		}
	}
	var items []menu.Item
	for _, it := range g.snapshot.Items {
		if it.CategorySlug != slug {
			items = append(items, it)
		}
	}
	g.snapshot.Categories = cats
	g.snapshot.Items = items
	return nil
}

func (g *FakeGateway) CreateItem(_ context.Context, in menu.ItemInput) (menu.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("create-item"); err != nil {
		return menu.Item{}, err
	}
	g.Items = append(g.Items, in)
	g.nextID++
	it := menu.Item{
		ID:           g.nextID,
		CategorySlug: in.CategorySlug,
		NameUZ:       in.NameUZ,
		NameRU:       in.NameRU,
		Price:        in.Price,
		DescUZ:       in.DescUZ,
		DescRU:       in.DescRU,
	}
	if in.ImageURL != nil {
		it.ImageURL = *in.ImageURL
	}
	g.snapshot.Items = append(g.snapshot.Items, it)
	return it, nil
}

func (g *FakeGateway) UpdateItem(_ context.Context, id int64, patch menu.ItemPatch) (menu.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record(fmt.Sprintf("update-item %d", id)); err != nil {
		return menu.Item{}, err
	}
	g.Patches = append(g.Patches, patch)
	for i := range g.snapshot.Items {
		it := &g.snapshot.Items[i]
		if it.ID != id {
			continue
		}
		setString(&it.CategorySlug, patch.CategorySlug)
		setString(&it.NameUZ, patch.NameUZ)
		setString(&it.NameRU, patch.NameRU)
		setString(&it.ImageURL, patch.ImageURL)
		setString(&it.DescUZ, patch.DescUZ)
		setString(&it.DescRU, patch.DescRU)
		if patch.Price != nil {
			it.Price = *patch.Price
		}
		return *it, nil
	}
	return menu.Item{}, menu.ErrItemNotFound
}

func (g *FakeGateway) DeleteItem(_ context.Context, id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record(fmt.Sprintf("delete-item %d", id)); err != nil {
		return err
	}
	var items []menu.Item
	for _, it := range g.snapshot.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	g.snapshot.Items = items
	return nil
}

func (g *FakeGateway) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.record("upload " + filename); err != nil {
		return "", err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

// SampleMenu is a small two-category menu used across UI tests.
func SampleMenu() menu.Snapshot {
	return menu.Snapshot{
		Categories: []menu.Category{
			{Slug: "burgers", NameUZ: "Burgerlar", NameRU: "Бургеры"},
			{Slug: "drinks", NameUZ: "Ichimliklar", NameRU: "Напитки"},
		},
		Items: []menu.Item{
			{ID: 1, CategorySlug: "burgers", NameUZ: "Burger", NameRU: "Бургер", Price: 30000},
			{ID: 2, CategorySlug: "burgers", NameUZ: "Cheeseburger", NameRU: "Чизбургер", Price: 35000, ImageURL: "/uploads/cb.png"},
			{ID: 3, CategorySlug: "drinks", NameUZ: "Cheesy shake", NameRU: "Сырный шейк", Price: 18000},
			{ID: 4, CategorySlug: "drinks", NameUZ: "Choy", NameRU: "Чай", Price: 5000},
		},
	}
}

var _ menu.Gateway = (*FakeGateway)(nil)
