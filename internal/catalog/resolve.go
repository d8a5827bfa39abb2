package catalog

import (
	"context"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/shared/slug"
)

// CategoryBySlug re-fetches the category collection and matches the slugified
// display names against want. The service has no native slug field, so this
// round trip is the only way back from a URL to a category id.
func (c *Client) CategoryBySlug(ctx context.Context, want string) (Category, bool) {
	for _, cat := range c.Categories(ctx) {
		if slug.FromName(cat.Name) == want {
			return cat, true
		}
	}
	return Category{}, false
}

// CategorySlugByID maps a product's owning category id to its slug. Empty
// when the category is unknown.
func (c *Client) CategorySlugByID(ctx context.Context, id ID) string {
	for _, cat := range c.Categories(ctx) {
		if cat.ID == id {
			return slug.FromName(cat.Name)
		}
	}
	return ""
}
