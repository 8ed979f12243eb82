package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/atomicstack/menu-admin/internal/devserver"
	"github.com/atomicstack/menu-admin/internal/menu"
	"github.com/atomicstack/menu-admin/internal/menuapi"
	"github.com/atomicstack/menu-admin/internal/menustore"
)

// MenuServer is the development backend running on an httptest server with a
// private data directory.
type MenuServer struct {
	URL     string
	DataDir string
	Store   *menustore.Store
}

// NewMenuServer starts a dev backend for the duration of the test.
func NewMenuServer(t *testing.T) *MenuServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	store, err := menustore.Open(dir)
	if err != nil {
		t.Fatalf("open menu store: %v", err)
	}
	srv, err := devserver.New(store, dir)
	if err != nil {
		t.Fatalf("create dev server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &MenuServer{URL: ts.URL, DataDir: dir, Store: store}
}

// Client returns an API client pointed at the server.
func (s *MenuServer) Client() *menuapi.Client {
	return menuapi.New(s.URL)
}

// Seed stores snap's categories and items directly, bypassing HTTP. Category
// slugs in snap are passed as explicit slugs; item ids are reassigned.
func (s *MenuServer) Seed(t *testing.T, snap menu.Snapshot) {
	t.Helper()
	for _, c := range snap.Categories {
		slug := c.Slug
		nameRU := c.NameRU
		if _, err := s.Store.AddCategory(c.NameUZ, &nameRU, &slug); err != nil {
			t.Fatalf("seed category %s: %v", c.Slug, err)
		}
	}
	for _, it := range snap.Items {
		in := menu.ItemInput{
			CategorySlug: it.CategorySlug,
			NameUZ:       it.NameUZ,
			NameRU:       it.NameRU,
			Price:        it.Price,
			DescUZ:       it.DescUZ,
			DescRU:       it.DescRU,
		}
		if it.ImageURL != "" {
			url := it.ImageURL
			in.ImageURL = &url
		}
		if _, err := s.Store.AddItem(in); err != nil {
			t.Fatalf("seed item %s: %v", it.NameUZ, err)
		}
	}
}
