package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/catalog"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/flash"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/middleware"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/render"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/pricing"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/shared/apperr"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

// CartHandler covers the cart screen and its mutations.
type CartHandler struct {
	Catalog *catalog.Client
	Mgr     *cart.Manager
	Flash   *flash.Codec
}

func NewCartHandler(cat *catalog.Client, mgr *cart.Manager, fl *flash.Codec) *CartHandler {
	return &CartHandler{Catalog: cat, Mgr: mgr, Flash: fl}
}

func (h *CartHandler) store(c *gin.Context) *cart.Store {
	return h.Mgr.Store(middleware.GetSessionID(c))
}

// Get handles GET /carrito.
func (h *CartHandler) Get(c *gin.Context) {
	lines, err := h.store(c).Lines()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	total, err := h.store(c).TotalPrice()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.CartPage{
		Page:  pageChrome(c, "Tu Pedido"),
		Items: make([]view.CartItem, 0, len(lines)),
		Total: view.FormatPrice(total),
	}
	for _, l := range lines {
		it := view.CartItem{
			LineID:      l.LineID,
			Name:        l.Name,
			Quantity:    l.Quantity,
			Observation: strings.TrimSpace(l.Observation),
			FinalPrice:  view.FormatPrice(l.FinalPrice),
			UnitPrice:   view.FormatPrice(l.UnitPrice()),
		}
		if l.HasSize {
			it.SizeLabel = l.Size.Label()
		}
		vm.Items = append(vm.Items, it)
		vm.Count += l.Quantity
	}

	render.Page(c, http.StatusOK, "cart", vm)
}

// Add handles POST /carrito/agregar. The catalog stays authoritative for the
// price: the form only says which product, the service says what it costs.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Producto no encontrado.")
		return
	}

	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = clamp(n, 1, 99)
		}
	}

	p, err := h.Catalog.Product(c.Request.Context(), catalog.ID(productID))
	if err != nil || p.Price == nil {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "El producto no está disponible.")
		return
	}

	catSlug := h.Catalog.CategorySlugByID(c.Request.Context(), p.CategoryID)
	isHamburger := pricing.IsHamburger(catSlug)

	size := pricing.SizeSimple
	if isHamburger {
		size = pricing.ParseSize(c.PostForm("size"))
	}

	line := cart.Line{
		LineID:       cart.NewLineID(p.ID.String(), size),
		ProductID:    p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		CategorySlug: catSlug,
		Quantity:     qty,
		Size:         size,
		HasSize:      isHamburger,
		Observation:  strings.TrimSpace(c.PostForm("observation")),
		FinalPrice:   pricing.UnitPrice(*p.Price, size) * float64(qty),
	}

	if err := h.store(c).Add(line); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	// Back to a clean detail form: qty 1, simple, no observation.
	render.RedirectWithFlash(c, h.Flash, "/producto/"+p.ID.String(), view.FlashSuccess, "¡Producto agregado al carrito!")
}

// Update handles POST /carrito/actualizar. Quantity zero removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	lineID := strings.TrimSpace(c.PostForm("line_id"))
	if lineID == "" {
		render.RedirectWithFlash(c, h.Flash, "/carrito", view.FlashError, "Producto no encontrado.")
		return
	}

	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = n
		}
	}
	qty = clamp(qty, 0, 99)

	if err := h.store(c).UpdateQuantity(lineID, qty); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Redirect(http.StatusFound, "/carrito")
}

// Remove handles POST /carrito/eliminar.
func (h *CartHandler) Remove(c *gin.Context) {
	lineID := strings.TrimSpace(c.PostForm("line_id"))
	if lineID == "" {
		render.RedirectWithFlash(c, h.Flash, "/carrito", view.FlashWarning, "Producto no encontrado.")
		return
	}

	if err := h.store(c).Remove(lineID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Redirect(http.StatusFound, "/carrito")
}
