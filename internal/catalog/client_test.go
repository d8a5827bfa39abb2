package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), nil)
}

func TestCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		w.Write([]byte(`[{"id":1,"name":"BEBIDAS","imageUrl":"/bebidas.png"},{"id":"2","name":"EXTRAS"}]`))
	})

	cats := c.Categories(context.Background())
	require.Len(t, cats, 2)
	assert.Equal(t, ID("1"), cats[0].ID)
	assert.Equal(t, "BEBIDAS", cats[0].Name)
	assert.Equal(t, ID("2"), cats[1].ID)
}

func TestCategoriesNonArrayPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":"BEBIDAS"}]}`))
	})

	// Alternate data-wrapped dialect must coerce to empty, not explode.
	assert.Empty(t, c.Categories(context.Background()))
}

func TestCategoriesServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	cats := c.Categories(context.Background())
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}

func TestDisabledClient(t *testing.T) {
	c := NewClient("", nil, nil)

	assert.False(t, c.Enabled())
	assert.Empty(t, c.Categories(context.Background()))
	assert.Empty(t, c.ProductsByCategory(context.Background(), "1"))
	_, err := c.Product(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductsByCategory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("categoryId"))
		w.Write([]byte(`[{"id":8,"name":"PAPAS FRITAS GRANDES","price":3500,"categoryId":4}]`))
	})

	prods := c.ProductsByCategory(context.Background(), "4")
	require.Len(t, prods, 1)
	assert.Equal(t, "PAPAS FRITAS GRANDES", prods[0].Name)
	require.NotNil(t, prods[0].Price)
	assert.Equal(t, 3500.0, *prods[0].Price)
}

func TestProduct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/6" {
			w.Write([]byte(`{"id":6,"name":"COCA COLA 500ML","description":"Bebida gaseosa","price":2500,"categoryId":3}`))
			return
		}
		http.NotFound(w, r)
	})

	p, err := c.Product(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "COCA COLA 500ML", p.Name)

	_, err = c.Product(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductMissingPrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":10,"name":"PROMO","categoryId":4}`))
	})

	p, err := c.Product(context.Background(), "10")
	require.NoError(t, err)
	assert.Nil(t, p.Price)
}

func TestCategoryBySlug(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"HAMBURGUESAS CON PAPAS"},{"id":2,"name":"Hamburguesas Sin Papas"}]`))
	})

	cat, ok := c.CategoryBySlug(context.Background(), "hamburguesas-sin-papas")
	require.True(t, ok)
	assert.Equal(t, ID("2"), cat.ID)

	_, ok = c.CategoryBySlug(context.Background(), "postres")
	assert.False(t, ok)
}
