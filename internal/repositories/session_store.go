package repository

import (
	"sync"

	"github.com/glamzz/glamzz-store/internal/models"
)

// SessionStore holds the single session user. Logout clears the user only;
// cart and order history survive it.
type SessionStore struct {
	mu   sync.RWMutex
	user *models.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Set(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
}

func (s *SessionStore) Get() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}

	user := *s.user

	return &user
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
}

// Update applies fn to the session user in place. No-op when logged out.
func (s *SessionStore) Update(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		fn(s.user)
	}
}
