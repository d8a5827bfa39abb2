package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/catalog"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/render"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/shared/slug"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

// CategoryHandler renders the product list for one category
// (GET /categoria/:slug). The URL carries a slug, not an id; the category is
// resolved by re-fetching the collection and matching slugified names.
type CategoryHandler struct {
	Catalog *catalog.Client
}

func NewCategoryHandler(cat *catalog.Client) *CategoryHandler {
	return &CategoryHandler{Catalog: cat}
}

func (h *CategoryHandler) Get(c *gin.Context) {
	s := c.Param("slug")

	cat, ok := h.Catalog.CategoryBySlug(c.Request.Context(), s)

	title := slug.Humanize(s)
	if ok {
		title = strings.ToUpper(cat.Name)
	}

	vm := view.CategoryPage{
		Page: pageChrome(c, title),
		Slug: s,
	}

	if ok {
		prods := h.Catalog.ProductsByCategory(c.Request.Context(), cat.ID)
		vm.Products = make([]view.ProductCard, 0, len(prods))
		for _, p := range prods {
			vm.Products = append(vm.Products, view.ProductCard{
				ID:          p.ID.String(),
				Name:        p.Name,
				Description: p.Description,
				Price:       view.FormatOptionalPrice(p.Price),
			})
		}
	}

	render.Page(c, http.StatusOK, "category", vm)
}
