package models

// Movement is a single stock adjustment applied to an item.
type Movement struct {
	ID        int    `json:"id"`
	ItemID    string `json:"item_id"`
	Delta     int    `json:"delta"`
	CreatedAt int64  `json:"createdAt"`
}
