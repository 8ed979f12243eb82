package menu

import (
	"context"
	"errors"
	"io"
)

// Category is a menu section. Slug is its stable identifier in URLs.
type Category struct {
	ID     int64  `json:"id,omitempty"`
	Slug   string `json:"slug"`
	NameUZ string `json:"name_uz"`
	NameRU string `json:"name_ru"`
}

// Item is a single dish or drink within a category.
type Item struct {
	ID           int64  `json:"id"`
	CategorySlug string `json:"category_slug"`
	NameUZ       string `json:"name_uz"`
	NameRU       string `json:"name_ru"`
	Price        int64  `json:"price"`
	ImageURL     string `json:"image_url"`
	DescUZ       string `json:"desc_uz"`
	DescRU       string `json:"desc_ru"`
}

// Snapshot is the complete menu as returned by GET /api/menu. Values are
// replaced wholesale; callers must not modify the slices they receive.
type Snapshot struct {
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
}

// Category looks up a category by slug.
func (s Snapshot) Category(slug string) (Category, bool) {
	for _, c := range s.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// Item looks up an item by id.
func (s Snapshot) Item(id int64) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Clone returns a deep copy of the snapshot slices.
func (s Snapshot) Clone() Snapshot {
	dup := Snapshot{}
	if s.Categories != nil {
		dup.Categories = make([]Category, len(s.Categories))
		copy(dup.Categories, s.Categories)
	}
	if s.Items != nil {
		dup.Items = make([]Item, len(s.Items))
		copy(dup.Items, s.Items)
	}
	return dup
}

// CategoryInput is the body of POST /api/menu/categories. Nil pointers are
// sent as JSON null so the server can derive defaults.
type CategoryInput struct {
	NameUZ string  `json:"name_uz"`
	NameRU *string `json:"name_ru"`
	Slug   *string `json:"slug"`
}

// CategoryUpdate is the body of PUT /api/menu/categories/{slug}.
type CategoryUpdate struct {
	NameUZ string  `json:"name_uz"`
	NameRU *string `json:"name_ru"`
}

// ItemInput is the body of POST /api/menu/items.
type ItemInput struct {
	CategorySlug string  `json:"category_slug"`
	NameUZ       string  `json:"name_uz"`
	NameRU       string  `json:"name_ru"`
	Price        int64   `json:"price"`
	ImageURL     *string `json:"image_url"`
	DescUZ       string  `json:"desc_uz"`
	DescRU       string  `json:"desc_ru"`
}

// ItemPatch is the body of PATCH /api/menu/items/{id}. Only non-nil fields
// are sent.
type ItemPatch struct {
	CategorySlug *string `json:"category_slug,omitempty"`
	NameUZ       *string `json:"name_uz,omitempty"`
	NameRU       *string `json:"name_ru,omitempty"`
	Price        *int64  `json:"price,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	DescUZ       *string `json:"desc_uz,omitempty"`
	DescRU       *string `json:"desc_ru,omitempty"`
}

// Gateway is the remote menu API used by every flow.
type Gateway interface {
	Menu(ctx context.Context) (Snapshot, error)
	CreateCategory(ctx context.Context, in CategoryInput) (Category, error)
	UpdateCategory(ctx context.Context, slug string, in CategoryUpdate) (Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	CreateItem(ctx context.Context, in ItemInput) (Item, error)
	UpdateItem(ctx context.Context, id int64, patch ItemPatch) (Item, error)
	DeleteItem(ctx context.Context, id int64) error
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Context carries what forms and commands need: the gateway and the snapshot
// the user is looking at.
type Context struct {
	API      Gateway
	Snapshot Snapshot
}

// SnapshotLoaded reports the outcome of a full reload.
type SnapshotLoaded struct {
	Reason   string
	Snapshot Snapshot
	Err      error
}

// MutationResult reports the outcome of a mutating action followed by its
// reload. Err is set when the mutation itself failed (nothing changed on the
// server that the client knows of). ReloadErr is set when the mutation
// succeeded but the follow-up reload did not. Seq is the submit sequence
// number the console stamped on the request; zero when untracked.
type MutationResult struct {
	ID        string
	Seq       uint64
	Info      string
	Snapshot  Snapshot
	Err       error
	ReloadErr error
}

var (
	ErrNameUZRequired   = errors.New("Name UZ is required")
	ErrNamesRequired    = errors.New("Name UZ and Name RU are required")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
)

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
