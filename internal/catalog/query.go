package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stockroom/internal/models"
)

// Filter selects items by substring search and derived status.
type Filter struct {
	Search string
	Status string
}

// Status filter values. StatusAll matches every item; the other two must
// equal the item's derived status.
const (
	StatusAll = "all"
	StatusOK  = models.StatusOK
	StatusLow = models.StatusLow
)

func matchesFilter(item models.Item, f Filter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.SKU), needle) &&
			!strings.Contains(strings.ToLower(item.Category), needle) {
			return false
		}
	}
	if f.Status != "" && f.Status != StatusAll && f.Status != item.Status() {
		return false
	}
	return true
}

// Query returns the items matching the filter, sorted by name using
// locale-aware collation. Ties keep their input order. The input slice is
// never modified.
func Query(items []models.Item, f Filter) []models.Item {
	matched := make([]models.Item, 0, len(items))
	for _, item := range items {
		if matchesFilter(item, f) {
			matched = append(matched, item)
		}
	}

	c := collate.New(language.Und)
	sort.SliceStable(matched, func(i, j int) bool {
		return c.CompareString(matched[i].Name, matched[j].Name) < 0
	})
	return matched
}
