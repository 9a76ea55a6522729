package repository

import (
	"sync"

	"github.com/glamzz/glamzz-store/internal/models"
)

// ReviewStore keeps per-product reviews, newest first.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[string][]models.Review
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{reviews: make(map[string][]models.Review)}
}

func (s *ReviewStore) Prepend(productID string, review models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews[productID] = append([]models.Review{review}, s.reviews[productID]...)
}

func (s *ReviewStore) List(productID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, len(s.reviews[productID]))
	copy(out, s.reviews[productID])

	return out
}
