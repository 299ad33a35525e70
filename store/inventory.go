package store

import (
	"sort"
	"sync"

	"github.com/warebotics/waresim/core/model"
)

// InventoryStore is the mutex-guarded item registry. Name resolution uses
// insertion order: when two items share a name, the earliest entry wins.
// That ambiguity is inherited from the data model and documented rather
// than resolved here.
type InventoryStore struct {
	mu    sync.RWMutex
	items []model.InventoryItem
}

// NewInventoryStore creates a store seeded with the given items.
func NewInventoryStore(items ...model.InventoryItem) *InventoryStore {
	s := &InventoryStore{}
	s.items = append(s.items, items...)
	return s
}

// Add appends an item to the registry.
func (s *InventoryStore) Add(item model.InventoryItem) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

// Items returns a snapshot of the registry in insertion order.
func (s *InventoryStore) Items() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.InventoryItem(nil), s.items...)
}

// Resolve returns the first item whose name matches, in insertion order.
func (s *InventoryStore) Resolve(name string) (model.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return model.InventoryItem{}, false
}

// Deduct removes qty units from the first item matching name, flooring at
// zero, and reports whether the item existed.
func (s *InventoryStore) Deduct(name string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Quantity -= qty
			if s.items[i].Quantity < 0 {
				s.items[i].Quantity = 0
			}
			return true
		}
	}
	return false
}

// Categories returns the distinct item categories in sorted order.
func (s *InventoryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	var out []string
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Strings(out)
	return out
}
