package view

type CartItem struct {
	LineID      string
	Name        string
	SizeLabel   string // empty when the product takes no size
	Quantity    int
	Observation string
	FinalPrice  string
	UnitPrice   string
}

type CartPage struct {
	Page
	Items []CartItem
	Count int
	Total string
}
