package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hamburguesas Sin Papas", "hamburguesas-sin-papas"},
		{"HAMBURGUESAS CON PAPAS", "hamburguesas-con-papas"},
		{"Bebidas", "bebidas"},
		{"  Extras  ", "extras"},
		{"Jalapeño & Cheddar", "jalapeno-cheddar"},
		{"Menú del Día", "menu-del-dia"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FromName(tc.in), "FromName(%q)", tc.in)
	}
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "HAMBURGUESAS SIN PAPAS", Humanize("hamburguesas-sin-papas"))
	assert.Equal(t, "BEBIDAS", Humanize("bebidas"))
}
