package cart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/pricing"
)

func burgerLine(productID string, size pricing.Size, basePrice float64, qty int) Line {
	return Line{
		LineID:       NewLineID(productID, size),
		ProductID:    productID,
		Name:         "CHEESEBURGER CON PAPAS",
		CategorySlug: "hamburguesas-completas",
		Quantity:     qty,
		Size:         size,
		HasSize:      true,
		FinalPrice:   pricing.UnitPrice(basePrice, size) * float64(qty),
	}
}

func TestAddAccumulatesTotalItems(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Add(burgerLine("1", pricing.SizeSimple, 9900, 2)))
	require.NoError(t, s.Add(burgerLine("1", pricing.SizeSimple, 9900, 3)))
	require.NoError(t, s.Add(burgerLine("6", pricing.SizeSimple, 2500, 1)))

	lines, err := s.Lines()
	require.NoError(t, err)
	// No merging: identical product+size still means separate lines.
	assert.Len(t, lines, 3)

	n, err := s.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestEmptyCartTotals(t *testing.T) {
	s := NewStore()

	n, err := s.TotalItems()
	require.NoError(t, err)
	assert.Zero(t, n)

	p, err := s.TotalPrice()
	require.NoError(t, err)
	assert.Zero(t, p)
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	s := NewStore()
	l1 := burgerLine("1", pricing.SizeSimple, 9900, 2)
	l2 := burgerLine("2", pricing.SizeSimple, 12800, 1)
	require.NoError(t, s.Add(l1))
	require.NoError(t, s.Add(l2))

	before, err := s.TotalItems()
	require.NoError(t, err)

	require.NoError(t, s.UpdateQuantity(l1.LineID, 0))

	lines, err := s.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, l2.LineID, lines[0].LineID)

	after, err := s.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, before-2, after)
}

func TestUpdateQuantityRescalesFinalPrice(t *testing.T) {
	s := NewStore()

	// 9900 base, doble surcharge +3000, quantity 2.
	l := burgerLine("1", pricing.SizeDoble, 9900, 2)
	require.NoError(t, s.Add(l))

	lines, err := s.Lines()
	require.NoError(t, err)
	require.InDelta(t, 25800, lines[0].FinalPrice, 1e-9)

	unitBefore := lines[0].UnitPrice()

	require.NoError(t, s.UpdateQuantity(l.LineID, 3))

	lines, err = s.Lines()
	require.NoError(t, err)
	assert.Equal(t, 3, lines[0].Quantity)
	// 25800/2*3: the doble surcharge stays baked into the unit price.
	assert.InDelta(t, 38700, lines[0].FinalPrice, 1e-9)
	assert.InDelta(t, unitBefore, lines[0].UnitPrice(), 1e-9)
}

func TestUpdateQuantityAbsentLineIsNoop(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(burgerLine("1", pricing.SizeSimple, 9900, 1)))

	require.NoError(t, s.UpdateQuantity("nope", 5))

	n, err := s.TotalItems()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Remove("nope"))
}

func TestClear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(burgerLine("1", pricing.SizeTriple, 9900, 4)))
	require.NoError(t, s.Add(burgerLine("6", pricing.SizeSimple, 2500, 2)))

	require.NoError(t, s.Clear())

	n, err := s.TotalItems()
	require.NoError(t, err)
	assert.Zero(t, n)
	p, err := s.TotalPrice()
	require.NoError(t, err)
	assert.Zero(t, p)
}

func TestClosedStoreFailsFast(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(burgerLine("1", pricing.SizeSimple, 9900, 1)))
	s.Close()

	assert.ErrorIs(t, s.Add(Line{}), ErrStoreClosed)
	assert.ErrorIs(t, s.Remove("x"), ErrStoreClosed)
	assert.ErrorIs(t, s.UpdateQuantity("x", 1), ErrStoreClosed)
	assert.ErrorIs(t, s.Clear(), ErrStoreClosed)
	_, err := s.Lines()
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.TotalItems()
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.TotalPrice()
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestNewLineIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewLineID("1", pricing.SizeDoble)
		require.False(t, seen[id], "duplicate line id %s", id)
		seen[id] = true
	}
}

func TestManagerPerSession(t *testing.T) {
	m := NewManager()

	a := m.Store("sess-a")
	b := m.Store("sess-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Store("sess-a"))

	require.NoError(t, a.Add(burgerLine("1", pricing.SizeSimple, 9900, 1)))
	n, err := b.TotalItems()
	require.NoError(t, err)
	assert.Zero(t, n)

	m.Drop("sess-a")
	assert.ErrorIs(t, a.Add(Line{}), ErrStoreClosed)
	// The manager hands out a fresh store for the same id afterwards.
	fresh := m.Store("sess-a")
	assert.NotSame(t, a, fresh)
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	var ids []string
	for i := 0; i < 5; i++ {
		l := burgerLine(fmt.Sprintf("%d", i), pricing.SizeSimple, 1000, 1)
		ids = append(ids, l.LineID)
		require.NoError(t, s.Add(l))
	}

	lines, err := s.Lines()
	require.NoError(t, err)
	for i, l := range lines {
		assert.Equal(t, ids[i], l.LineID)
	}
}
