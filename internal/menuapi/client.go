// Package menuapi is the HTTP gateway to the menu backend.
package menuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/atomicstack/menu-admin/internal/logging/events"
	"github.com/atomicstack/menu-admin/internal/menu"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// RequestIDHeader carries the per-request trace id.
const RequestIDHeader = "X-Request-ID"

// HTTPError is returned for every non-2xx response. Its message is the raw
// response body, which is what the user gets to see.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Body
}

// Client talks to the menu REST API. It never retries and sets no timeout.
type Client struct {
	baseURL string
	http    *http.Client
	headers http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// New builds a client for baseURL; an empty value means DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL: base,
		http:    http.DefaultClient,
		headers: http.Header{"Content-Type": []string{"application/json"}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type requestOptions struct {
	header http.Header
}

// RequestOption adjusts a single request.
type RequestOption func(*requestOptions)

// Header sets a header for one request, overriding the client defaults.
func Header(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set(key, value)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out interface{}, opts ...RequestOption) error {
	ro := requestOptions{header: http.Header{}}
	for _, opt := range opts {
		opt(&ro)
	}
	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	for key, values := range ro.header {
		req.Header[key] = append([]string(nil), values...)
	}
	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)

	events.API.Request(id, method, endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		events.API.Failure(id, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	events.API.Response(id, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
		events.API.Failure(id, herr)
		return herr
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, body, out)
}

func categoryPath(slug string) string {
	return "/api/menu/categories/" + url.PathEscape(slug)
}

func itemPath(id int64) string {
	return "/api/menu/items/" + strconv.FormatInt(id, 10)
}

// Menu fetches the full menu.
func (c *Client) Menu(ctx context.Context) (menu.Snapshot, error) {
	var snap menu.Snapshot
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu", nil, &snap); err != nil {
		return menu.Snapshot{}, err
	}
	return snap, nil
}

func (c *Client) CreateCategory(ctx context.Context, in menu.CategoryInput) (menu.Category, error) {
	var out menu.Category
	err := c.doJSON(ctx, http.MethodPost, "/api/menu/categories", in, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, slug string, in menu.CategoryUpdate) (menu.Category, error) {
	var out menu.Category
	err := c.doJSON(ctx, http.MethodPut, categoryPath(slug), in, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, slug string) error {
	return c.doJSON(ctx, http.MethodDelete, categoryPath(slug), nil, nil)
}

func (c *Client) CreateItem(ctx context.Context, in menu.ItemInput) (menu.Item, error) {
	var out menu.Item
	err := c.doJSON(ctx, http.MethodPost, "/api/menu/items", in, &out)
	return out, err
}

func (c *Client) UpdateItem(ctx context.Context, id int64, patch menu.ItemPatch) (menu.Item, error) {
	var out menu.Item
	err := c.doJSON(ctx, http.MethodPatch, itemPath(id), patch, &out)
	return out, err
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends r as the multipart field "file" and returns the stored URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	var out uploadResponse
	if err := c.do(ctx, http.MethodPost, "/api/upload", &buf, &out, Header("Content-Type", mw.FormDataContentType())); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload %s: empty url in response", filename)
	}
	return out.URL, nil
}

var _ menu.Gateway = (*Client)(nil)
