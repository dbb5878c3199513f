package repo

import (
	"errors"

	"stockroom/internal/catalog"
	"stockroom/internal/models"
)

var (
	// ErrItemNotFound is returned when the target id is not in the collection.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateSKU is returned when another item already uses the SKU.
	ErrDuplicateSKU = errors.New("sku already exists")
	// ErrInvalidQuantityChange is returned when an adjustment would drive the
	// quantity below zero.
	ErrInvalidQuantityChange = errors.New("quantity cannot go below zero")
)

// ItemRepository defines the interface for item data operations. Payloads are
// expected to be normalized and validator-clean; SKU uniqueness is enforced
// here because it needs the full collection.
type ItemRepository interface {
	Create(p catalog.Payload) (models.Item, error)
	GetAll() ([]models.Item, error)
	GetByID(id string) (models.Item, error)
	Update(id string, p catalog.Payload) (models.Item, error)
	Delete(id string) error
	AdjustQuantity(id string, delta int) (models.Item, error)
}
