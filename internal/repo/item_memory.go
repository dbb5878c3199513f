package repo

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stockroom/internal/catalog"
	"stockroom/internal/models"
	"stockroom/internal/store"
)

// InMemoryItemRepository owns the canonical item collection. It is the only
// component that mutates it; every successful mutation writes the whole
// collection through to the store. Insertion order is preserved.
type InMemoryItemRepository struct {
	items []models.Item
	store store.Store
	newID func() string
	now   func() time.Time
}

// NewInMemoryItemRepository creates a repository writing through to st.
func NewInMemoryItemRepository(st store.Store) *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items: []models.Item{},
		store: st,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// SetClock replaces the id generator and clock, for tests.
func (r *InMemoryItemRepository) SetClock(newID func() string, now func() time.Time) {
	if newID != nil {
		r.newID = newID
	}
	if now != nil {
		r.now = now
	}
}

// Seed replaces the collection with already-sanitized items, without
// persisting. Used once at startup.
func (r *InMemoryItemRepository) Seed(items []models.Item) {
	r.items = append([]models.Item{}, items...)
}

// persist writes the full collection through to the store. A failed write is
// an environment fault, not part of the mutation contract: it is logged and
// the in-memory state stands.
func (r *InMemoryItemRepository) persist() {
	if r.store == nil {
		return
	}
	if err := r.store.Save(r.items); err != nil {
		log.Error().Err(err).Msg("failed to persist items")
	}
}

func (r *InMemoryItemRepository) skuTaken(sku, exceptID string) bool {
	for _, item := range r.items {
		if item.ID != exceptID && strings.EqualFold(item.SKU, sku) {
			return true
		}
	}
	return false
}

func (r *InMemoryItemRepository) indexOf(id string) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Create adds a new item from a normalized, validator-clean payload.
func (r *InMemoryItemRepository) Create(p catalog.Payload) (models.Item, error) {
	if r.skuTaken(p.SKU, "") {
		return models.Item{}, ErrDuplicateSKU
	}

	now := r.now().UnixMilli()
	item := models.Item{
		ID:        r.newID(),
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Quantity:  int(p.Quantity),
		MinStock:  int(p.MinStock),
		Price:     catalog.RoundPrice(p.Price),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items = append(r.items, item)
	r.persist()
	return item, nil
}

// GetAll returns a snapshot of the collection in insertion order.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	return append([]models.Item{}, r.items...), nil
}

// GetByID retrieves an item by its id.
func (r *InMemoryItemRepository) GetByID(id string) (models.Item, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.items[i], nil
	}
	return models.Item{}, ErrItemNotFound
}

// Update replaces all fields except id and createdAt.
func (r *InMemoryItemRepository) Update(id string, p catalog.Payload) (models.Item, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Item{}, ErrItemNotFound
	}
	if r.skuTaken(p.SKU, id) {
		return models.Item{}, ErrDuplicateSKU
	}

	item := r.items[i]
	item.Name = p.Name
	item.SKU = p.SKU
	item.Category = p.Category
	item.Quantity = int(p.Quantity)
	item.MinStock = int(p.MinStock)
	item.Price = catalog.RoundPrice(p.Price)
	item.UpdatedAt = r.now().UnixMilli()
	r.items[i] = item
	r.persist()
	return item, nil
}

// Delete removes the item with the given id.
func (r *InMemoryItemRepository) Delete(id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.persist()
	return nil
}

// AdjustQuantity applies a delta to the item's quantity. An adjustment that
// would drive the quantity below zero is rejected and leaves the item
// untouched, updatedAt included.
func (r *InMemoryItemRepository) AdjustQuantity(id string, delta int) (models.Item, error) {
	i := r.indexOf(id)
	if i < 0 {
		return models.Item{}, ErrItemNotFound
	}
	if r.items[i].Quantity+delta < 0 {
		return models.Item{}, ErrInvalidQuantityChange
	}

	r.items[i].Quantity += delta
	r.items[i].UpdatedAt = r.now().UnixMilli()
	r.persist()
	return r.items[i], nil
}

// Clear empties the collection without persisting. Test helper.
func (r *InMemoryItemRepository) Clear() {
	r.items = []models.Item{}
}
