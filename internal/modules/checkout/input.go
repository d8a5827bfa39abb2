// Package checkout covers the order form: validation rules and the local
// order summary. Submitting never calls an order-creation endpoint; the
// summary page is the whole outcome of a confirmed order.
package checkout

const (
	DeliveryPickup   = "pickup"
	DeliveryDelivery = "delivery"

	PaymentTransfer = "transfer"
	PaymentCash     = "cash"
)

// Input is the checkout form. Address is only required when the customer
// chose delivery.
type Input struct {
	FirstName     string `form:"first_name" binding:"required,max=100"`
	LastName      string `form:"last_name" binding:"required,max=100"`
	Phone         string `form:"phone" binding:"required,max=32"`
	DeliveryType  string `form:"delivery_type" binding:"required,oneof=pickup delivery"`
	Address       string `form:"address" binding:"required_if=DeliveryType delivery,max=255"`
	PaymentMethod string `form:"payment_method" binding:"required,oneof=transfer cash"`
}

func DeliveryLabel(t string) string {
	if t == DeliveryDelivery {
		return "Delivery"
	}
	return "Retiro en local"
}

func PaymentLabel(m string) string {
	if m == PaymentCash {
		return "Efectivo"
	}
	return "Transferencia"
}
