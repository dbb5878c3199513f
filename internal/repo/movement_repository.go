package repo

import (
	"time"

	"stockroom/internal/models"
)

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

type MovementRepository interface {
	Log(itemID string, delta int) error
	GetByItemID(itemID string, mf MovementFilter) ([]models.Movement, int, error)
}
