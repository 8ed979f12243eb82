// Package menustore keeps the development menu in a single JSON file.
package menustore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/atomicstack/menu-admin/internal/logging"
	"github.com/atomicstack/menu-admin/internal/menu"
)

// FileName is the menu file created inside the data directory.
const FileName = "menu.json"

var ErrNegativePrice = errors.New("price must not be negative")

type meta struct {
	NextCategoryID int64 `json:"next_category_id"`
	NextItemID     int64 `json:"next_item_id"`
}

type categoryRecord struct {
	ID     int64  `json:"id"`
	Slug   string `json:"slug"`
	NameUZ string `json:"name_uz"`
	NameRU string `json:"name_ru"`
}

type itemRecord struct {
	ID           int64   `json:"id"`
	CategorySlug string  `json:"category_slug"`
	NameUZ       string  `json:"name_uz"`
	NameRU       string  `json:"name_ru"`
	Price        int64   `json:"price"`
	ImageURL     *string `json:"image_url"`
	DescUZ       string  `json:"desc_uz"`
	DescRU       string  `json:"desc_ru"`
}

type document struct {
	Meta       meta             `json:"meta"`
	Categories []categoryRecord `json:"categories"`
	Items      []itemRecord     `json:"items"`
}

func defaultDocument() document {
	return document{
		Meta:       meta{NextCategoryID: 1, NextItemID: 1},
		Categories: []categoryRecord{},
		Items:      []itemRecord{},
	}
}

// Store serializes every operation behind one mutex; each call reads the
// file, applies the change and writes it back.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open prepares dir and returns a store backed by dir/menu.json. The file is
// created on first use.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, FileName)}, nil
}

// Path returns the menu file location.
func (s *Store) Path() string { return s.path }

func (s *Store) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := defaultDocument()
		return doc, s.save(doc)
	}
	if err != nil {
		return document{}, fmt.Errorf("read menu: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Error(fmt.Errorf("menu file %s is corrupt, starting over: %w", s.path, err))
		doc = defaultDocument()
		return doc, s.save(doc)
	}
	if doc.Meta.NextCategoryID < 1 {
		doc.Meta.NextCategoryID = 1
	}
	if doc.Meta.NextItemID < 1 {
		doc.Meta.NextItemID = 1
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace menu: %w", err)
	}
	return nil
}

func (s *Store) update(apply func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := apply(&doc); err != nil {
		return err
	}
	return s.save(doc)
}

// Menu returns every category and item in insertion order.
func (s *Store) Menu() (menu.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return menu.Snapshot{}, err
	}
	snap := menu.Snapshot{
		Categories: make([]menu.Category, 0, len(doc.Categories)),
		Items:      make([]menu.Item, 0, len(doc.Items)),
	}
	for _, c := range doc.Categories {
		snap.Categories = append(snap.Categories, c.toCategory())
	}
	for _, it := range doc.Items {
		snap.Items = append(snap.Items, it.toItem())
	}
	return snap, nil
}

// AddCategory creates a category. The slug is derived from slug or, when
// that is blank, from nameUZ, and made unique with a numeric suffix. A blank
// nameRU copies nameUZ.
func (s *Store) AddCategory(nameUZ string, nameRU, slug *string) (menu.Category, error) {
	nameUZ = strings.TrimSpace(nameUZ)
	if nameUZ == "" {
		return menu.Category{}, menu.ErrNameUZRequired
	}
	var created categoryRecord
	err := s.update(func(doc *document) error {
		source := nameUZ
		if v := deref(slug); v != "" {
			source = v
		}
		existing := make(map[string]struct{}, len(doc.Categories))
		for _, c := range doc.Categories {
			existing[c.Slug] = struct{}{}
		}
		created = categoryRecord{
			ID:     doc.Meta.NextCategoryID,
			Slug:   uniqueSlug(Slugify(source), existing),
			NameUZ: nameUZ,
			NameRU: orDefault(deref(nameRU), nameUZ),
		}
		doc.Meta.NextCategoryID++
		doc.Categories = append(doc.Categories, created)
		return nil
	})
	if err != nil {
		return menu.Category{}, err
	}
	return created.toCategory(), nil
}

// UpdateCategory renames the category identified by slug.
func (s *Store) UpdateCategory(slug, nameUZ string, nameRU *string) (menu.Category, error) {
	nameUZ = strings.TrimSpace(nameUZ)
	if nameUZ == "" {
		return menu.Category{}, menu.ErrNameUZRequired
	}
	var updated categoryRecord
	err := s.update(func(doc *document) error {
		for i := range doc.Categories {
			c := &doc.Categories[i]
			if c.Slug != slug {
				continue
			}
			c.NameUZ = nameUZ
			c.NameRU = orDefault(deref(nameRU), nameUZ)
			updated = *c
			return nil
		}
		return menu.ErrCategoryNotFound
	})
	if err != nil {
		return menu.Category{}, err
	}
	return updated.toCategory(), nil
}

// DeleteCategory removes the category and every item that belongs to it.
// Unknown slugs are not an error.
func (s *Store) DeleteCategory(slug string) error {
	return s.update(func(doc *document) error {
		cats := doc.Categories[:0]
		for _, c := range doc.Categories {
			if c.Slug != slug {
				cats = append(cats, c)
			}
		}
		items := doc.Items[:0]
		for _, it := range doc.Items {
			if it.CategorySlug != slug {
				items = append(items, it)
			}
		}
		doc.Categories = cats
		doc.Items = items
		return nil
	})
}

// AddItem appends an item with the next id.
func (s *Store) AddItem(in menu.ItemInput) (menu.Item, error) {
	if strings.TrimSpace(in.NameUZ) == "" || strings.TrimSpace(in.NameRU) == "" {
		return menu.Item{}, menu.ErrNamesRequired
	}
	if in.Price < 0 {
		return menu.Item{}, ErrNegativePrice
	}
	var created itemRecord
	err := s.update(func(doc *document) error {
		created = itemRecord{
			ID:           doc.Meta.NextItemID,
			CategorySlug: in.CategorySlug,
			NameUZ:       in.NameUZ,
			NameRU:       in.NameRU,
			Price:        in.Price,
			ImageURL:     in.ImageURL,
			DescUZ:       in.DescUZ,
			DescRU:       in.DescRU,
		}
		doc.Meta.NextItemID++
		doc.Items = append(doc.Items, created)
		return nil
	})
	if err != nil {
		return menu.Item{}, err
	}
	return created.toItem(), nil
}

// UpdateItem applies the non-nil fields of patch.
func (s *Store) UpdateItem(id int64, patch menu.ItemPatch) (menu.Item, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return menu.Item{}, ErrNegativePrice
	}
	var updated itemRecord
	err := s.update(func(doc *document) error {
		for i := range doc.Items {
			it := &doc.Items[i]
			if it.ID != id {
				continue
			}
			applyPatch(it, patch)
			updated = *it
			return nil
		}
		return menu.ErrItemNotFound
	})
	if err != nil {
		return menu.Item{}, err
	}
	return updated.toItem(), nil
}

// DeleteItem removes the item. Unknown ids are not an error.
func (s *Store) DeleteItem(id int64) error {
	return s.update(func(doc *document) error {
		items := doc.Items[:0]
		for _, it := range doc.Items {
			if it.ID != id {
				items = append(items, it)
			}
		}
		doc.Items = items
		return nil
	})
}

func applyPatch(it *itemRecord, patch menu.ItemPatch) {
	if patch.CategorySlug != nil {
		it.CategorySlug = *patch.CategorySlug
	}
	if patch.NameUZ != nil {
		it.NameUZ = *patch.NameUZ
	}
	if patch.NameRU != nil {
		it.NameRU = *patch.NameRU
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		url := *patch.ImageURL
		it.ImageURL = &url
	}
	if patch.DescUZ != nil {
		it.DescUZ = *patch.DescUZ
	}
	if patch.DescRU != nil {
		it.DescRU = *patch.DescRU
	}
}

// Slugify lowercases s, keeps letters and digits, turns spaces, dashes and
// underscores into single dashes and trims them from the ends. An empty
// result becomes "category".
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.Trim(out, "-")
	if out == "" {
		return "category"
	}
	return out
}

func uniqueSlug(base string, existing map[string]struct{}) string {
	slug := base
	for i := 2; ; i++ {
		if _, taken := existing[slug]; !taken {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (c categoryRecord) toCategory() menu.Category {
	return menu.Category{ID: c.ID, Slug: c.Slug, NameUZ: c.NameUZ, NameRU: c.NameRU}
}

func (it itemRecord) toItem() menu.Item {
	return menu.Item{
		ID:           it.ID,
		CategorySlug: it.CategorySlug,
		NameUZ:       it.NameUZ,
		NameRU:       it.NameRU,
		Price:        it.Price,
		ImageURL:     deref(it.ImageURL),
		DescUZ:       it.DescUZ,
		DescRU:       it.DescRU,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
