package catalog

import "stockroom/internal/models"

// Summary aggregates the whole collection for the dashboard view.
type Summary struct {
	Count         int     `json:"count"`
	TotalUnits    int     `json:"totalUnits"`
	LowStockCount int     `json:"lowStockCount"`
	TotalValue    float64 `json:"totalValue"`
}

// Summarize derives the aggregate counts and totals from a snapshot of items.
func Summarize(items []models.Item) Summary {
	s := Summary{Count: len(items)}
	for _, item := range items {
		s.TotalUnits += item.Quantity
		if item.LowStock() {
			s.LowStockCount++
		}
		s.TotalValue += float64(item.Quantity) * item.Price
	}
	s.TotalValue = RoundPrice(s.TotalValue)
	return s
}
