package checkout

import (
	"fmt"
	"strings"

	"github.com/LucasBarberan/sra-burga-pedidos/internal/modules/cart"
	"github.com/LucasBarberan/sra-burga-pedidos/pkg/view"
)

// BuildSummary composes the confirmation shown after a valid submit:
// customer data, itemized lines with size/quantity/observation, and the
// grouped total.
func BuildSummary(in Input, lines []cart.Line, total float64) view.OrderSummary {
	items := make([]view.CartItem, 0, len(lines))
	for _, l := range lines {
		it := view.CartItem{
			LineID:      l.LineID,
			Name:        l.Name,
			Quantity:    l.Quantity,
			Observation: strings.TrimSpace(l.Observation),
			FinalPrice:  view.FormatPrice(l.FinalPrice),
		}
		if l.HasSize {
			it.SizeLabel = l.Size.Label()
		}
		items = append(items, it)
	}

	s := view.OrderSummary{
		CustomerName:  strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName),
		Phone:         strings.TrimSpace(in.Phone),
		DeliveryLabel: DeliveryLabel(in.DeliveryType),
		PaymentLabel:  PaymentLabel(in.PaymentMethod),
		Items:         items,
		Total:         view.FormatPrice(total),
	}
	if in.DeliveryType == DeliveryDelivery {
		s.Address = strings.TrimSpace(in.Address)
	}
	s.Text = summaryText(s)
	return s
}

func summaryText(s view.OrderSummary) string {
	var sb strings.Builder
	sb.WriteString("¡Pedido confirmado!\n\n")
	sb.WriteString("Cliente: " + s.CustomerName + "\n")
	sb.WriteString("Teléfono: " + s.Phone + "\n")
	sb.WriteString("Entrega: " + s.DeliveryLabel + "\n")
	if s.Address != "" {
		sb.WriteString("Dirección: " + s.Address + "\n")
	}
	sb.WriteString("Pago: " + s.PaymentLabel + "\n\n")
	for _, it := range s.Items {
		name := it.Name
		if it.SizeLabel != "" {
			name += " (" + it.SizeLabel + ")"
		}
		sb.WriteString(fmt.Sprintf("- %s x%d: %s\n", name, it.Quantity, it.FinalPrice))
		if it.Observation != "" {
			sb.WriteString("  Obs: " + it.Observation + "\n")
		}
	}
	sb.WriteString("\nTotal: " + s.Total + "\n")
	sb.WriteString("\n¡Gracias por tu pedido!\n")
	return sb.String()
}
