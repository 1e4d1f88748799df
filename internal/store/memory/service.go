package memory

import (
	"context"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

func (s *Store) CreateService(_ context.Context, sv *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, *sv)
	return nil
}

func (s *Store) ServiceByID(_ context.Context, id string) (*model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.services {
		if s.services[i].ID == id {
			sv := s.services[i]
			return &sv, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListServices(_ context.Context) ([]model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

func (s *Store) UpdateService(_ context.Context, sv *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == sv.ID {
			s.services[i] = *sv
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteService(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.services {
		if s.services[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return store.ErrNotFound
	}
	for i := range s.appointments {
		if s.appointments[i].ServiceID == id {
			return store.ErrServiceInUse
		}
	}
	s.services = append(s.services[:idx], s.services[idx+1:]...)
	return nil
}
