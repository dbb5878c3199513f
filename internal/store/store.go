// Package store persists the item collection as a single JSON-array blob.
// The repository writes the whole set through after every successful
// mutation; loading returns the raw decoded value so the sanitizer can
// repair records persisted by older or buggy writers.
package store

import "stockroom/internal/models"

type Store interface {
	// Load returns the decoded blob content, nil when nothing has been
	// persisted yet. A non-nil error means the blob exists but is unreadable;
	// callers are expected to log it and start from an empty collection.
	Load() (any, error)

	// Save replaces the blob with the given collection.
	Save(items []models.Item) error
}
