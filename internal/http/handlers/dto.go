package handlers

import (
	"time"

	"stockroom/internal/models"
)

type ItemRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	MinStock float64 `json:"minStock"`
	Price    float64 `json:"price"`
}

type ItemResponse struct {
	Id        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	MinStock  int     `json:"minStock"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		Id:        item.ID,
		Name:      item.Name,
		SKU:       item.SKU,
		Category:  item.Category,
		Quantity:  item.Quantity,
		MinStock:  item.MinStock,
		Price:     item.Price,
		Status:    item.Status(),
		CreatedAt: item.CreatedTime().UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedTime().UTC().Format(time.RFC3339),
	}
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ItemsSearchResult struct {
	Data []ItemResponse `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ItemID    string `json:"item_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"createdAt"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ImportItemsResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}
