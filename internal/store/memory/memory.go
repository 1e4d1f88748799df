// Package memory is the default in-memory backend. State lives for the
// process lifetime only; Reset exists so tests can start clean.
package memory

import (
	"sync"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

type Store struct {
	mu           sync.RWMutex
	users        []model.User
	services     []model.Service
	slots        []model.Slot
	appointments []model.Appointment
	tokens       []store.RefreshToken
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Reset drops everything. Test helper, not reachable from the API.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.services = nil
	s.slots = nil
	s.appointments = nil
	s.tokens = nil
}
