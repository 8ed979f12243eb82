// Package devserver serves the menu REST API over a menustore for local
// development and integration tests.
package devserver

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atomicstack/menu-admin/internal/logging"
	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menu"
	"github.com/atomicstack/menu-admin/internal/menustore"
)

// UploadDirName is the directory under the data dir that holds uploads.
const UploadDirName = "uploads"

// Server wires the menu store to HTTP handlers.
type Server struct {
	store     *menustore.Store
	uploadDir string
}

// New creates the upload directory below dataDir and returns a server for
// store.
func New(store *menustore.Store, dataDir string) (*Server, error) {
	dir := filepath.Join(dataDir, UploadDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Server{store: store, uploadDir: dir}, nil
}

// Handler returns a gin engine with every route, the upload file server and
// the request middleware installed.
func (s *Server) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery(), traceRequests(), allowAnyOrigin())
	s.RegisterRoutes(engine)
	engine.Static("/uploads", s.uploadDir)
	return engine
}

// RegisterRoutes installs the API routes on router.
func (s *Server) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.GET("/menu", s.getMenu)
		api.POST("/menu/categories", s.createCategory)
		api.PUT("/menu/categories/:slug", s.updateCategory)
		api.DELETE("/menu/categories/:slug", s.deleteCategory)
		api.POST("/menu/items", s.createItem)
		api.PATCH("/menu/items/:id", s.updateItem)
		api.DELETE("/menu/items/:id", s.deleteItem)
		api.POST("/upload", s.upload)
	}
}

type categoryRequest struct {
	NameUZ string  `json:"name_uz"`
	NameRU *string `json:"name_ru"`
	Slug   *string `json:"slug"`
}

func (s *Server) getMenu(c *gin.Context) {
	snap, err := s.store.Menu()
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	created, err := s.store.AddCategory(req.NameUZ, req.NameRU, req.Slug)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) updateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	updated, err := s.store.UpdateCategory(c.Param("slug"), req.NameUZ, req.NameRU)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.store.DeleteCategory(c.Param("slug")); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) createItem(c *gin.Context) {
	var req menu.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	created, err := s.store.AddItem(req)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) updateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var patch menu.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	updated, err := s.store.UpdateItem(id, patch)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteItem(id); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		detail(c, http.StatusBadRequest, "file field is required")
		return
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(s.uploadDir, name)); err != nil {
		errorResponse(c, fmt.Errorf("save upload: %w", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + name})
}

func itemID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, fmt.Sprintf("invalid item id %q", raw))
		return 0, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, menu.ErrCategoryNotFound), errors.Is(err, menu.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, menu.ErrNameUZRequired), errors.Is(err, menu.ErrNamesRequired), errors.Is(err, menustore.ErrNegativePrice):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(err)
	}
	detail(c, status, err.Error())
}

func detail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": message})
}

func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		events.API.Served(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Milliseconds())
	}
}

// allowAnyOrigin mirrors the permissive CORS policy of the production
// backend so a browser client can talk to the dev server too.
func allowAnyOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", "86400")
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true})
			return
		}
		c.Next()
	}
}
