package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/pricing"
)

func TestBuildSummaryDelivery(t *testing.T) {
	in := Input{
		FirstName:     "Lucas",
		LastName:      "Barberán",
		Phone:         "+54 9 11 1234 5678",
		DeliveryType:  DeliveryDelivery,
		Address:       "Av. Siempreviva 742",
		PaymentMethod: PaymentTransfer,
	}
	lines := []cart.Line{
		{
			LineID:      "1-doble-1",
			Name:        "CHEESEBURGER CON PAPAS",
			Quantity:    3,
			Size:        pricing.SizeDoble,
			HasSize:     true,
			Observation: "sin cebolla",
			FinalPrice:  38700,
		},
		{
			LineID:     "6-simple-2",
			Name:       "COCA COLA 500ML",
			Quantity:   1,
			FinalPrice: 2500,
		},
	}

	s := BuildSummary(in, lines, 41200)

	assert.Equal(t, "Lucas Barberán", s.CustomerName)
	assert.Equal(t, "Delivery", s.DeliveryLabel)
	assert.Equal(t, "Av. Siempreviva 742", s.Address)
	assert.Equal(t, "Transferencia", s.PaymentLabel)
	assert.Equal(t, "$41.200", s.Total)

	assert.Contains(t, s.Text, "CHEESEBURGER CON PAPAS (Doble) x3: $38.700")
	assert.Contains(t, s.Text, "Obs: sin cebolla")
	assert.Contains(t, s.Text, "COCA COLA 500ML x1: $2.500")
	assert.Contains(t, s.Text, "Total: $41.200")
	assert.Contains(t, s.Text, "Dirección: Av. Siempreviva 742")
}

func TestBuildSummaryPickupOmitsAddress(t *testing.T) {
	in := Input{
		FirstName:     "Ana",
		LastName:      "Pérez",
		Phone:         "111",
		DeliveryType:  DeliveryPickup,
		Address:       "no importa",
		PaymentMethod: PaymentCash,
	}

	s := BuildSummary(in, nil, 0)

	assert.Equal(t, "Retiro en local", s.DeliveryLabel)
	assert.Equal(t, "Efectivo", s.PaymentLabel)
	assert.Empty(t, s.Address)
	assert.NotContains(t, s.Text, "Dirección:")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Delivery", DeliveryLabel("delivery"))
	assert.Equal(t, "Retiro en local", DeliveryLabel("pickup"))
	assert.Equal(t, "Efectivo", PaymentLabel("cash"))
	assert.Equal(t, "Transferencia", PaymentLabel("transfer"))
}
