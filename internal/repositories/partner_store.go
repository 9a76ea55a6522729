package repository

import (
	"sync"

	"github.com/glamzz/glamzz-store/internal/models"
)

type PartnerStore struct {
	mu           sync.RWMutex
	applications []models.PartnerApplication
}

func NewPartnerStore() *PartnerStore {
	return &PartnerStore{}
}

func (s *PartnerStore) Append(app models.PartnerApplication) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applications = append(s.applications, app)
}

func (s *PartnerStore) List() []models.PartnerApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PartnerApplication, len(s.applications))
	copy(out, s.applications)

	return out
}
