package memory

import (
	"context"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return store.ErrEmailExists
		}
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}
