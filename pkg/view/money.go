package view

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are whole pesos shown the way the menu board does: "$9.900".
// Fractional amounts can appear after quantity rescaling and keep two
// decimals ("$1.234,50").
var pesos = message.NewPrinter(language.MustParse("es-AR"))

func FormatPrice(v float64) string {
	if v == math.Trunc(v) {
		return pesos.Sprintf("$%.0f", v)
	}
	return pesos.Sprintf("$%.2f", v)
}

// FormatOptionalPrice renders "-" for products the catalog lists without a
// price, matching the original storefront.
func FormatOptionalPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatPrice(*v)
}

// FormatSurcharge renders "+$3.000" style size-option hints; zero gives "".
func FormatSurcharge(v float64) string {
	if v <= 0 {
		return ""
	}
	return pesos.Sprintf("+$%.0f", v)
}
