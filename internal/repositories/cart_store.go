package repository

import (
	"sync"

	"github.com/glamzz/glamzz-store/internal/models"
)

// CartStore keeps the cart lines in insertion order. The uniqueness key of a
// line is (product id, size).
type CartStore struct {
	mu    sync.RWMutex
	items []models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Items returns a deep copy of the current lines.
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)

	return out
}

func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Upsert inserts a quantity-1 line for (item.ProductID, item.Size), or
// increments the existing line's quantity when the key is already present.
func (s *CartStore) Upsert(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Size == item.Size {
			s.items[i].Quantity++

			return
		}
	}

	item.Quantity = 1
	s.items = append(s.items, item)
}

// Remove deletes the matching line. Missing lines are a silent no-op.
func (s *CartStore) Remove(productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items = append(s.items[:i], s.items[i+1:]...)

			return
		}
	}
}

// Adjust changes the matching line's quantity by delta, clamped to a minimum
// of 1. Missing lines are a silent no-op.
func (s *CartStore) Adjust(productID, size string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID && s.items[i].Size == size {
			q := s.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.items[i].Quantity = q

			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}
