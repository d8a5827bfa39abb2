// Package pricing holds the size-variant price rules. Only the two hamburger
// categories offer sizes; every other product sells at its base price.
package pricing

// Size is the hamburger size variant.
type Size string

const (
	SizeSimple Size = "simple"
	SizeDoble  Size = "doble"
	SizeTriple Size = "triple"
)

// Surcharges in whole pesos on top of the base price.
const (
	dobleExtra  = 3000
	tripleExtra = 5500
)

// The combo category appears as "HAMBURGUESAS CON PAPAS" in some catalogs and
// "HAMBURGUESAS COMPLETAS" in others; both slugs are accepted.
var hamburgerCategories = map[string]bool{
	"hamburguesas-con-papas": true,
	"hamburguesas-completas": true,
	"hamburguesas-sin-papas": true,
}

// IsHamburger reports whether products of this category take a size variant.
func IsHamburger(categorySlug string) bool {
	return hamburgerCategories[categorySlug]
}

// ParseSize validates a submitted size value. Empty or unknown values fall
// back to simple.
func ParseSize(s string) Size {
	switch Size(s) {
	case SizeDoble:
		return SizeDoble
	case SizeTriple:
		return SizeTriple
	default:
		return SizeSimple
	}
}

// Surcharge returns the extra charged for a size.
func (s Size) Surcharge() float64 {
	switch s {
	case SizeDoble:
		return dobleExtra
	case SizeTriple:
		return tripleExtra
	default:
		return 0
	}
}

// Label returns the user-facing name of the size.
func (s Size) Label() string {
	switch s {
	case SizeDoble:
		return "Doble"
	case SizeTriple:
		return "Triple"
	default:
		return "Simple"
	}
}

// UnitPrice is the size-adjusted unit price for a product.
func UnitPrice(base float64, s Size) float64 {
	return base + s.Surcharge()
}

// Options lists the selectable sizes in display order.
func Options() []Size {
	return []Size{SizeSimple, SizeDoble, SizeTriple}
}
