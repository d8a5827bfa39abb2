package view

type CheckoutForm struct {
	FirstName     string
	LastName      string
	Phone         string
	DeliveryType  string // pickup | delivery
	Address       string
	PaymentMethod string // transfer | cash
}

type CheckoutPage struct {
	Page
	Form      CheckoutForm
	Errors    map[string]string
	PageError string
	Items     []CartItem
	Total     string
}

// OrderSummary is the confirmation shown after a successful submit. The
// order is never sent anywhere; this page is all the customer gets.
type OrderSummary struct {
	CustomerName  string
	Phone         string
	DeliveryLabel string
	Address       string // empty for pickup
	PaymentLabel  string
	Items         []CartItem
	Total         string
	Text          string // plain-text rendition of the whole summary
}

type ConfirmPage struct {
	Page
	Summary OrderSummary
}
