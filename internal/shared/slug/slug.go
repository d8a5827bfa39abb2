// Package slug derives URL-safe identifiers from display names. The catalog
// service exposes no slug field, so navigation is keyed on FromName(category
// name) and resolved back by re-matching.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks removes combining marks after NFD decomposition, so
// "Jalapeño" becomes "Jalapeno" before lowering.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func FromName(s string) string {
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Humanize is the reverse best effort for headers when the category could not
// be resolved: "hamburguesas-sin-papas" -> "HAMBURGUESAS SIN PAPAS".
func Humanize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", " "))
}
