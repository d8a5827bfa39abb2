package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/flash"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/middleware"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/render"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/http/validation"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/checkout"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/shared/apperr"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

// CheckoutHandler runs the two-state checkout flow: editing until a valid
// submit, then the confirmation. No order leaves the process; the summary
// page is the outcome.
type CheckoutHandler struct {
	Mgr   *cart.Manager
	Flash *flash.Codec
}

func NewCheckoutHandler(mgr *cart.Manager, fl *flash.Codec) *CheckoutHandler {
	return &CheckoutHandler{Mgr: mgr, Flash: fl}
}

func (h *CheckoutHandler) store(c *gin.Context) *cart.Store {
	return h.Mgr.Store(middleware.GetSessionID(c))
}

// Get handles GET /checkout.
func (h *CheckoutHandler) Get(c *gin.Context) {
	items, total, count, err := h.cartSummary(c)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if count == 0 {
		render.RedirectWithFlash(c, h.Flash, "/carrito", view.FlashError, "El carrito está vacío.")
		return
	}

	vm := view.CheckoutPage{
		Page:  pageChrome(c, "Datos del Cliente"),
		Form:  view.CheckoutForm{DeliveryType: checkout.DeliveryPickup, PaymentMethod: checkout.PaymentTransfer},
		Items: items,
		Total: total,
	}
	render.Page(c, http.StatusOK, "checkout", vm)
}

// Post handles POST /checkout.
func (h *CheckoutHandler) Post(c *gin.Context) {
	items, total, count, err := h.cartSummary(c)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if count == 0 {
		render.RedirectWithFlash(c, h.Flash, "/carrito", view.FlashError, "El carrito está vacío.")
		return
	}

	var in checkout.Input
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderEditing(c, in, errs, items, total)
		return
	}

	lines, err := h.store(c).Lines()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	totalPrice, err := h.store(c).TotalPrice()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	summary := checkout.BuildSummary(in, lines, totalPrice)

	// The order exists only on this screen; clear unconditionally and close
	// the cart/checkout overlay.
	if err := h.store(c).Clear(); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.ConfirmPage{
		Page:    pageChrome(c, "¡Pedido confirmado!"),
		Summary: summary,
	}
	vm.CartCount = 0
	render.Page(c, http.StatusOK, "confirm", vm)
}

func (h *CheckoutHandler) renderEditing(c *gin.Context, in checkout.Input, errs validation.FieldErrors, items []view.CartItem, total string) {
	vm := view.CheckoutPage{
		Page: pageChrome(c, "Datos del Cliente"),
		Form: view.CheckoutForm{
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			Phone:         in.Phone,
			DeliveryType:  in.DeliveryType,
			Address:       in.Address,
			PaymentMethod: in.PaymentMethod,
		},
		Errors:    errs,
		PageError: errs.Message(),
		Items:     items,
		Total:     total,
	}
	if vm.Form.DeliveryType == "" {
		vm.Form.DeliveryType = checkout.DeliveryPickup
	}
	if vm.Form.PaymentMethod == "" {
		vm.Form.PaymentMethod = checkout.PaymentTransfer
	}
	render.Page(c, http.StatusBadRequest, "checkout", vm)
}

func (h *CheckoutHandler) cartSummary(c *gin.Context) ([]view.CartItem, string, int, error) {
	lines, err := h.store(c).Lines()
	if err != nil {
		return nil, "", 0, err
	}
	total, err := h.store(c).TotalPrice()
	if err != nil {
		return nil, "", 0, err
	}

	items := make([]view.CartItem, 0, len(lines))
	count := 0
	for _, l := range lines {
		it := view.CartItem{
			LineID:      l.LineID,
			Name:        l.Name,
			Quantity:    l.Quantity,
			Observation: l.Observation,
			FinalPrice:  view.FormatPrice(l.FinalPrice),
		}
		if l.HasSize {
			it.SizeLabel = l.Size.Label()
		}
		items = append(items, it)
		count += l.Quantity
	}
	return items, view.FormatPrice(total), count, nil
}
