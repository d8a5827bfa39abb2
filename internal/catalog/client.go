// Package catalog consumes the external read-only catalog service.
//
// The service speaks the flat-array dialect: GET /categories returns a bare
// JSON array of categories, GET /products?categoryId= a bare array of
// products, GET /products/:id a single object. The alternate
// /categorias dialect (data-wrapped, different field names) is NOT supported;
// the two are not interchangeable.
//
// Remote payloads are treated as untrusted: a response that is not the
// expected shape is coerced to an empty collection at this boundary rather
// than propagated, so a misbehaving service can never take a page down.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotFound is returned by Product when the service answers with a
// non-success status for that id.
var ErrNotFound = errors.New("catalog: product not found")

type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

// NewClient builds a catalog client. An empty baseURL yields a disabled
// client: every read returns empty results without touching the network.
func NewClient(baseURL string, hc *http.Client, logger *slog.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"), hc: hc, logger: logger}
}

// Enabled reports whether a base URL was configured.
func (c *Client) Enabled() bool { return c.baseURL != "" }

// Categories fetches the full category collection. Disabled client, transport
// failure, non-2xx status and malformed payloads all yield an empty slice.
func (c *Client) Categories(ctx context.Context) []Category {
	var cats []Category
	if !c.getJSON(ctx, "/categories", nil, &cats) {
		return []Category{}
	}
	if cats == nil {
		cats = []Category{}
	}
	return cats
}

// ProductsByCategory fetches products for one category id.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID ID) []Product {
	var prods []Product
	q := url.Values{"categoryId": {categoryID.String()}}
	if !c.getJSON(ctx, "/products", q, &prods) {
		return []Product{}
	}
	if prods == nil {
		prods = []Product{}
	}
	return prods
}

// Product fetches a single product. ErrNotFound covers both "service said
// no" and every degraded path; callers only need to distinguish found from
// not found.
func (c *Client) Product(ctx context.Context, id ID) (Product, error) {
	var p Product
	if !c.getJSON(ctx, "/products/"+url.PathEscape(id.String()), nil, &p) {
		return Product{}, ErrNotFound
	}
	if p.ID == "" {
		return Product{}, ErrNotFound
	}
	return p, nil
}

// getJSON performs one uncached GET and decodes into dst. Returns false on
// any failure; the caller renders its empty state. No retries, ever.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) bool {
	if !c.Enabled() {
		return false
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Warn("catalog_request_build_failed", slog.String("url", u), slog.Any("err", err))
		return false
	}
	req.Header.Set("Accept", "application/json")
	// Always fetch current data, never a cached copy.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("catalog_request_failed", slog.String("url", u), slog.Any("err", err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("catalog_bad_status", slog.String("url", u), slog.Int("status", resp.StatusCode))
		io.Copy(io.Discard, resp.Body)
		return false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("catalog_read_failed", slog.String("url", u), slog.Any("err", err))
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		c.logger.Warn("catalog_bad_payload", slog.String("url", u), slog.Any("err", err))
		return false
	}
	return true
}
