package store

import (
	"encoding/json"

	"stockroom/internal/models"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs. Save goes
// through JSON so Load returns the same shape a FileStore would.
type MemoryStore struct {
	raw   any
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (any, error) {
	return s.raw, nil
}

func (s *MemoryStore) Save(items []models.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.raw = raw
	s.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (s *MemoryStore) Saves() int { return s.saves }
