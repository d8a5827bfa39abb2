package view

// Page is the chrome shared by every screen: the header title and the cart
// badge count.
type Page struct {
	Title     string
	CartCount int
	Flash     *Flash
}

type CategoryCard struct {
	Slug     string
	Name     string
	ImageURL string
}

type MenuPage struct {
	Page
	Categories []CategoryCard
}

type ProductCard struct {
	ID          string
	Name        string
	Description string
	Price       string
}

type CategoryPage struct {
	Page
	Slug     string
	Products []ProductCard
}

type SizeOption struct {
	Value    string
	Label    string
	Extra    string // "+$3.000", empty for simple
	Selected bool
}

type ProductDetailPage struct {
	Page
	Found        bool
	ID           string
	Name         string
	Description  string
	ImageURL     string
	CategorySlug string
	HasPrice     bool
	Price        string
	IsHamburger  bool
	Sizes        []SizeOption
	Quantity     int
	Observation  string
	Total        string
}
