package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/catalog"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/render"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/shared/slug"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

// MenuHandler renders the category menu (GET /).
type MenuHandler struct {
	Catalog *catalog.Client
}

func NewMenuHandler(cat *catalog.Client) *MenuHandler {
	return &MenuHandler{Catalog: cat}
}

func (h *MenuHandler) Get(c *gin.Context) {
	cats := h.Catalog.Categories(c.Request.Context())

	vm := view.MenuPage{
		Page:       pageChrome(c, "Categorías"),
		Categories: make([]view.CategoryCard, 0, len(cats)),
	}
	for _, cat := range cats {
		vm.Categories = append(vm.Categories, view.CategoryCard{
			Slug:     slug.FromName(cat.Name),
			Name:     cat.Name,
			ImageURL: cat.ImageURL,
		})
	}

	render.Page(c, http.StatusOK, "menu", vm)
}
