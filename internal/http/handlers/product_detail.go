package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/catalog"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/render"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/pricing"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

// ProductHandler renders the product detail (GET /producto/:id). Size and
// quantity arrive as query params so the page can re-render the computed
// total without client-side scripting; the add form posts them on.
type ProductHandler struct {
	Catalog *catalog.Client
}

func NewProductHandler(cat *catalog.Client) *ProductHandler {
	return &ProductHandler{Catalog: cat}
}

func (h *ProductHandler) Get(c *gin.Context) {
	id := catalog.ID(c.Param("id"))

	p, err := h.Catalog.Product(c.Request.Context(), id)
	if err != nil {
		// Missing product is an empty screen, not a crash.
		vm := view.ProductDetailPage{Page: pageChrome(c, "Producto")}
		render.Page(c, http.StatusNotFound, "product", vm)
		return
	}

	catSlug := h.Catalog.CategorySlugByID(c.Request.Context(), p.CategoryID)
	isHamburger := pricing.IsHamburger(catSlug)

	size := pricing.SizeSimple
	if isHamburger {
		size = pricing.ParseSize(c.Query("size"))
	}

	qty := 1
	if v := c.Query("qty"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = clamp(n, 1, 99)
		}
	}

	vm := view.ProductDetailPage{
		Page:         pageChrome(c, p.Name),
		Found:        true,
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		CategorySlug: catSlug,
		IsHamburger:  isHamburger,
		Quantity:     qty,
	}
	if vm.Description == "" {
		vm.Description = "Sin descripción."
	}

	if p.Price != nil {
		unit := pricing.UnitPrice(*p.Price, size)
		vm.HasPrice = true
		vm.Price = view.FormatPrice(unit)
		vm.Total = view.FormatPrice(unit * float64(qty))
	} else {
		vm.Price = view.FormatOptionalPrice(nil)
		vm.Total = view.FormatOptionalPrice(nil)
	}

	if isHamburger {
		for _, opt := range pricing.Options() {
			vm.Sizes = append(vm.Sizes, view.SizeOption{
				Value:    string(opt),
				Label:    opt.Label(),
				Extra:    view.FormatSurcharge(opt.Surcharge()),
				Selected: opt == size,
			})
		}
	}

	render.Page(c, http.StatusOK, "product", vm)
}
