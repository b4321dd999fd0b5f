// Package memory provides the in-memory record map backend.
package memory

import (
	"context"
	"sync"

	"github.com/carson-networks/ledger-server/internal/storage/recordmap"
)

var _ recordmap.RecordMap = (*Store)(nil)

// Store is an insertion-ordered in-memory record map. It is safe for
// concurrent use; every method takes the store lock.
type Store struct {
	mu    sync.RWMutex
	items map[string]*recordmap.Record
	order []string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{items: make(map[string]*recordmap.Record)}
}

// Insert stores a copy of the record under record.ID. Inserting under a new
// id appends to the iteration order; inserting under an existing id replaces
// the value and keeps its original position.
func (s *Store) Insert(_ context.Context, record *recordmap.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.items[record.ID] = record.Clone()
	return nil
}

// Get returns a copy of the record under id.
func (s *Store) Get(_ context.Context, id string) (*recordmap.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.items[id]
	if !ok {
		return nil, recordmap.ErrNoRecord
	}
	return record.Clone(), nil
}

// Remove deletes the record under id and returns it.
func (s *Store) Remove(_ context.Context, id string) (*recordmap.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.items[id]
	if !ok {
		return nil, recordmap.ErrNoRecord
	}
	delete(s.items, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return record, nil
}

// Values returns a snapshot of all records in insertion order.
func (s *Store) Values(_ context.Context) ([]*recordmap.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]*recordmap.Record, 0, len(s.order))
	for _, id := range s.order {
		values = append(values, s.items[id].Clone())
	}
	return values, nil
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error {
	return nil
}
