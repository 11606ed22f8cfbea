package request

import (
	"github.com/isaiahriv1234/Freight-Project/internal/app/domains/entity/etshipment"
)

// ToQuoteItems converts request items to the entity form.
func (r *QuoteRequest) ToQuoteItems() []etshipment.QuoteItem {
	items := make([]etshipment.QuoteItem, 0, len(r.Items))
	for _, item := range r.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, etshipment.QuoteItem{
			Description: item.Description,
			Weight:      item.Weight,
			Quantity:    qty,
		})
	}
	return items
}
