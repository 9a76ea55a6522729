package repository

import "sync"

// WishlistStore is a set of product ids with toggle semantics, remembering
// insertion order for display.
type WishlistStore struct {
	mu      sync.RWMutex
	ids     []string
	members map[string]bool
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{members: make(map[string]bool)}
}

// Toggle adds the id when absent and removes it when present, returning the
// new membership state.
func (s *WishlistStore) Toggle(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.members[productID] {
		delete(s.members, productID)
		for i, id := range s.ids {
			if id == productID {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)

				break
			}
		}

		return false
	}

	s.members[productID] = true
	s.ids = append(s.ids, productID)

	return true
}

func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.members[productID]
}

func (s *WishlistStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}
