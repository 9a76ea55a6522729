package repository

import (
	"sync"
)

// ImageStore is the enrichment map plus the in-flight set. Writes to the map
// are last-write-wins; the mutex protects map integrity, not issuance order,
// so two overlapping requests for the same product settle in whichever order
// they finish.
type ImageStore struct {
	mu       sync.RWMutex
	images   map[string]string
	inFlight map[string]struct{}
}

func NewImageStore() *ImageStore {
	return &ImageStore{
		images:   make(map[string]string),
		inFlight: make(map[string]struct{}),
	}
}

// Commit overwrites any prior payload for the product unconditionally.
func (s *ImageStore) Commit(productID, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images[productID] = payload
}

func (s *ImageStore) Image(productID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.images[productID]

	return payload, ok
}

func (s *ImageStore) EnrichedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.images)
}

func (s *ImageStore) MarkInFlight(productIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range productIDs {
		s.inFlight[id] = struct{}{}
	}
}

// SettleInFlight removes the id from the in-flight set. The set tracks
// membership only, not a count: when requests for the same product overlap,
// the first to settle clears the flag for all of them.
func (s *ImageStore) SettleInFlight(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, productID)
}

func (s *ImageStore) IsInFlight(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.inFlight[productID]

	return ok
}

func (s *ImageStore) InFlight() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.inFlight))
	for id := range s.inFlight {
		out = append(out, id)
	}

	return out
}
