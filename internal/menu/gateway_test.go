package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type fakeGateway struct {
	mu        sync.Mutex
	snapshot  Snapshot
	calls     []string
	created   []CategoryInput
	updated   []CategoryUpdate
	items     []ItemInput
	patches   []ItemPatch
	uploadErr error
	menuErr   error
	failOn    map[string]error
}

func newFakeGateway(s Snapshot) *fakeGateway {
	return &fakeGateway{snapshot: s, failOn: map[string]error{}}
}

func (g *fakeGateway) record(call string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)
	return g.failOn[strings.Fields(call)[0]]
}

func (g *fakeGateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func (g *fakeGateway) Menu(context.Context) (Snapshot, error) {
	if err := g.record("menu"); err != nil {
		return Snapshot{}, err
	}
	if g.menuErr != nil {
		return Snapshot{}, g.menuErr
	}
	return g.snapshot.Clone(), nil
}

func (g *fakeGateway) CreateCategory(_ context.Context, in CategoryInput) (Category, error) {
	if err := g.record("create-category"); err != nil {
		return Category{}, err
	}
	g.created = append(g.created, in)
	slug := strings.ToLower(in.NameUZ)
	if in.Slug != nil {
		slug = *in.Slug
	}
	c := Category{Slug: slug, NameUZ: in.NameUZ}
	g.snapshot.Categories = append(g.snapshot.Categories, c)
	return c, nil
}

func (g *fakeGateway) UpdateCategory(_ context.Context, slug string, in CategoryUpdate) (Category, error) {
	if err := g.record("update-category " + slug); err != nil {
		return Category{}, err
	}
	g.updated = append(g.updated, in)
	return Category{Slug: slug, NameUZ: in.NameUZ}, nil
}

func (g *fakeGateway) DeleteCategory(_ context.Context, slug string) error {
	if err := g.record("delete-category " + slug); err != nil {
		return err
	}
	cats := g.snapshot.Categories[:0]
	for _, c := range g.snapshot.Categories {
		if c.Slug != slug {
			cats = append(cats, c)
		}
	}
	items := g.snapshot.Items[:0]
	for _, it := range g.snapshot.Items {
		if it.CategorySlug != slug {
			items = append(items, it)
		}
	}
	g.snapshot.Categories = cats
	g.snapshot.Items = items
	return nil
}

func (g *fakeGateway) CreateItem(_ context.Context, in ItemInput) (Item, error) {
	if err := g.record("create-item"); err != nil {
		return Item{}, err
	}
	g.items = append(g.items, in)
	it := Item{ID: int64(len(g.snapshot.Items) + 1), CategorySlug: in.CategorySlug, NameUZ: in.NameUZ, NameRU: in.NameRU, Price: in.Price}
	g.snapshot.Items = append(g.snapshot.Items, it)
	return it, nil
}

func (g *fakeGateway) UpdateItem(_ context.Context, id int64, patch ItemPatch) (Item, error) {
	if err := g.record(fmt.Sprintf("update-item %d", id)); err != nil {
		return Item{}, err
	}
	g.patches = append(g.patches, patch)
	return Item{ID: id}, nil
}

func (g *fakeGateway) DeleteItem(_ context.Context, id int64) error {
	return g.record(fmt.Sprintf("delete-item %d", id))
}

func (g *fakeGateway) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	if err := g.record("upload " + filename); err != nil {
		return "", err
	}
	if g.uploadErr != nil {
		return "", g.uploadErr
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

var errBoom = errors.New("boom")

func sampleSnapshot() Snapshot {
	return Snapshot{
		Categories: []Category{
			{Slug: "burgers", NameUZ: "Burgerlar", NameRU: "Бургеры"},
			{Slug: "drinks", NameUZ: "Ichimliklar", NameRU: "Напитки"},
		},
		Items: []Item{
			{ID: 1, CategorySlug: "burgers", NameUZ: "Burger", NameRU: "Бургер", Price: 30000},
			{ID: 2, CategorySlug: "burgers", NameUZ: "Cheeseburger", NameRU: "Чизбургер", Price: 35000, ImageURL: "/uploads/cb.png"},
			{ID: 3, CategorySlug: "drinks", NameUZ: "Cheesy shake", NameRU: "Сырный шейк", Price: 18000},
			{ID: 4, CategorySlug: "drinks", NameUZ: "Choy", NameRU: "Чай", Price: 5000},
		},
	}
}

func stubOpenImage(content string) func() {
	prev := openImageFn
	openImageFn = func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}
	return func() { openImageFn = prev }
}
