package models

import "time"

// Item statuses derived from quantity vs. the reorder threshold.
const (
	StatusOK  = "ok"
	StatusLow = "low"
)

// Item represents an inventory record. Timestamps are Unix milliseconds,
// which is also how they appear in the persisted blob.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	MinStock  int     `json:"minStock"`
	Price     float64 `json:"price"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i Item) LowStock() bool {
	return i.Quantity <= i.MinStock
}

// Status returns the derived stock status ("ok" or "low"). It is never stored.
func (i Item) Status() string {
	if i.LowStock() {
		return StatusLow
	}
	return StatusOK
}

// CreatedTime and UpdatedTime convert the stored millisecond timestamps.
func (i Item) CreatedTime() time.Time { return time.UnixMilli(i.CreatedAt) }
func (i Item) UpdatedTime() time.Time { return time.UnixMilli(i.UpdatedAt) }
