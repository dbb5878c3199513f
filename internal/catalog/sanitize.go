package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/models"
)

// Sanitizer repairs previously persisted data of unknown shape into
// well-formed items. NewID and Now are injectable so tests can pin ids and
// timestamps; the zero-value configuration from NewSanitizer is used
// everywhere else.
type Sanitizer struct {
	NewID func() string
	Now   func() time.Time
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{NewID: uuid.NewString, Now: time.Now}
}

// Sanitize coerces a decoded JSON value into a slice of valid items. It never
// fails: a value that is not an array yields an empty slice, and any element
// whose name, sku or category is empty after coercion is dropped. Already
// valid data passes through unchanged, so sanitizing twice is a no-op.
func (s *Sanitizer) Sanitize(raw any) []models.Item {
	list, ok := raw.([]any)
	if !ok {
		return []models.Item{}
	}

	now := s.Now().UnixMilli()
	items := make([]models.Item, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}

		item := models.Item{
			ID:        coerceString(obj["id"]),
			Name:      coerceText(obj["name"], MaxNameLen),
			SKU:       strings.ToUpper(coerceText(obj["sku"], MaxSKULen)),
			Category:  coerceText(obj["category"], MaxCategoryLen),
			Quantity:  coerceCount(obj["quantity"]),
			MinStock:  coerceCount(obj["minStock"]),
			Price:     coercePrice(obj["price"]),
			CreatedAt: coerceTimestamp(obj["createdAt"], now),
			UpdatedAt: coerceTimestamp(obj["updatedAt"], now),
		}
		if item.Name == "" || item.SKU == "" || item.Category == "" {
			continue
		}
		if item.ID == "" {
			item.ID = s.NewID()
		}
		if item.UpdatedAt < item.CreatedAt {
			item.UpdatedAt = item.CreatedAt
		}
		items = append(items, item)
	}
	return items
}

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}

// coerceText normalizes and truncates; truncation can land on a word
// boundary, so the result is trimmed again to keep sanitization idempotent.
func coerceText(v any, max int) string {
	return strings.TrimSpace(truncate(NormalizeText(coerceString(v)), max))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// coerceCount floors to a non-negative integer; anything that is not a finite
// non-negative number becomes 0.
func coerceCount(v any) int {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(math.Floor(f))
}

func coercePrice(v any) float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return RoundPrice(f)
}

func coerceTimestamp(v any, fallback int64) int64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fallback
	}
	return int64(f)
}
