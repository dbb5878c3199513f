package repo

import (
	"time"

	"stockroom/internal/models"
)

type InMemoryMovementRepository struct {
	movements []models.Movement
	now       func() time.Time
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
		now:       time.Now,
	}
}

// Log records a quantity adjustment against an item.
func (r *InMemoryMovementRepository) Log(itemID string, delta int) error {
	r.movements = append(r.movements, models.Movement{
		ID:        len(r.movements) + 1,
		ItemID:    itemID,
		Delta:     delta,
		CreatedAt: r.now().UnixMilli(),
	})
	return nil
}

// GetByItemID returns the movements for an item, optionally filtered by date
// range and paginated. The second return value is the total before paging.
func (r *InMemoryMovementRepository) GetByItemID(itemID string, mf MovementFilter) ([]models.Movement, int, error) {
	var filtered []models.Movement
	for _, m := range r.movements {
		if m.ItemID != itemID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt < mf.Since.UnixMilli()) ||
			(mf.Until != nil && m.CreatedAt > mf.Until.UnixMilli()) {
			continue
		}
		filtered = append(filtered, m)
	}

	if mf.Offset != nil && *mf.Offset > len(filtered) {
		return []models.Movement{}, len(filtered), nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, len(filtered))
	}
	end := len(filtered)
	if mf.Limit != nil && *mf.Limit > 0 {
		end = clamp(start+*mf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.movements = []models.Movement{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
