package repository

import (
	"sync"

	"github.com/glamzz/glamzz-store/internal/models"
)

// OrderStore is append-only order history, newest first.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Prepend(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]models.Order{order}, s.orders...)
}

func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)

	return out
}

func (s *OrderStore) Get(id string) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]

			return &order, true
		}
	}

	return nil, false
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}

// UpdateStatus moves an order to the given status. Only the status field of a
// stored order is ever mutated after creation.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status

			return true
		}
	}

	return false
}
