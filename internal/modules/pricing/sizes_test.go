package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHamburger(t *testing.T) {
	assert.True(t, IsHamburger("hamburguesas-con-papas"))
	assert.True(t, IsHamburger("hamburguesas-completas"))
	assert.True(t, IsHamburger("hamburguesas-sin-papas"))
	assert.False(t, IsHamburger("bebidas"))
	assert.False(t, IsHamburger("extras"))
	assert.False(t, IsHamburger(""))
}

func TestUnitPrice(t *testing.T) {
	assert.Equal(t, 9900.0, UnitPrice(9900, SizeSimple))
	assert.Equal(t, 12900.0, UnitPrice(9900, SizeDoble))
	assert.Equal(t, 15400.0, UnitPrice(9900, SizeTriple))
}

func TestParseSize(t *testing.T) {
	assert.Equal(t, SizeDoble, ParseSize("doble"))
	assert.Equal(t, SizeTriple, ParseSize("triple"))
	assert.Equal(t, SizeSimple, ParseSize("simple"))
	assert.Equal(t, SizeSimple, ParseSize(""))
	assert.Equal(t, SizeSimple, ParseSize("gigante"))
}
