package repository

import (
	"fmt"
	"sync"

	model "rental-ledger/internal/models"
	"rental-ledger/internal/rentalerrors"
)

// ItemStore defines the item storage interface for the rental ledger
type ItemStore interface {
	Allocate(item model.Item) model.Item
	Get(id uint64) (model.Item, error)
	Put(id uint64, item model.Item) error
	Len() uint64
	AvailableItems() []uint64
	RentedBy(renter string) []uint64
	ListedBy(owner string) []uint64
}

// MemoryStore is a concurrency-safe in-memory implementation of ItemStore.
// Items live in a growable arena indexed by id; ids are dense, start at 0
// and are never reused. Records are only ever overwritten in place, never
// deleted, so the slice doubles as the full listing history.
type MemoryStore struct {
	mu    sync.RWMutex
	items []model.Item
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Allocate assigns the next sequential id to the item, stores the record
// and returns it with the id filled in.
func (s *MemoryStore) Allocate(item model.Item) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uint64(len(s.items))
	s.items = append(s.items, item)
	return item
}

// Get returns the item with the given id. A slot outside the arena or one
// without an owner does not exist.
func (s *MemoryStore) Get(id uint64) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id >= uint64(len(s.items)) || !s.items[id].Exists() {
		return model.Item{}, fmt.Errorf("get item %d: %w", id, rentalerrors.ErrItemNotFound)
	}
	return s.items[id], nil
}

// Put overwrites the record at id. The id and owner of a stored record
// never change through Put.
func (s *MemoryStore) Put(id uint64, item model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id >= uint64(len(s.items)) || !s.items[id].Exists() {
		return fmt.Errorf("put item %d: %w", id, rentalerrors.ErrItemNotFound)
	}
	item.ID = id
	item.Owner = s.items[id].Owner
	s.items[id] = item
	return nil
}

// Len returns the number of allocated items.
func (s *MemoryStore) Len() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.items))
}

// AvailableItems returns the ids of all items open for rent, ascending.
func (s *MemoryStore) AvailableItems() []uint64 {
	return s.scan(func(it model.Item) bool {
		return it.Available
	})
}

// RentedBy returns the ids of all items currently rented by renter, ascending.
func (s *MemoryStore) RentedBy(renter string) []uint64 {
	return s.scan(func(it model.Item) bool {
		return it.Renter == renter
	})
}

// ListedBy returns the ids of all items listed by owner, ascending.
func (s *MemoryStore) ListedBy(owner string) []uint64 {
	return s.scan(func(it model.Item) bool {
		return it.Owner == owner
	})
}

// scan is a single ascending pass over the arena; ascending-id order is part
// of the query contract, not an accident of storage.
func (s *MemoryStore) scan(match func(model.Item) bool) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0)
	for i := range s.items {
		if s.items[i].Exists() && match(s.items[i]) {
			ids = append(ids, s.items[i].ID)
		}
	}
	return ids
}
