package memory

import (
	"context"
	"time"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

func (s *Store) RegisterSlot(_ context.Context, sl *model.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// TODO: reject a second slot for the same (provider, instant) pair
	s.slots = append(s.slots, *sl)
	return nil
}

func (s *Store) FindSlot(_ context.Context, providerID string, at time.Time) (*model.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.slotIndex(providerID, at); i != -1 {
		sl := s.slots[i]
		return &sl, nil
	}
	return nil, store.ErrNotFound
}

func (s *Store) RemoveSlot(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].ID == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListSlotsByProvider(_ context.Context, providerID string) ([]model.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Slot
	for i := range s.slots {
		if s.slots[i].ProviderID == providerID {
			out = append(out, s.slots[i])
		}
	}
	return out, nil
}

// Book holds the lock across the slot compare-and-remove and the appointment
// insert, so two racers for the same (provider, instant) serialize: the loser
// finds no slot and gets ErrSlotUnavailable.
func (s *Store) Book(_ context.Context, a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.slotIndex(a.ProviderID, a.At)
	if i == -1 {
		return store.ErrSlotUnavailable
	}
	// duplicate slots can exist for one (provider, instant); the appointment
	// uniqueness still holds, mirroring the postgres unique index
	for j := range s.appointments {
		if s.appointments[j].ProviderID == a.ProviderID && s.appointments[j].At.Equal(a.At) {
			return store.ErrSlotUnavailable
		}
	}
	s.slots = append(s.slots[:i], s.slots[i+1:]...)
	s.appointments = append(s.appointments, *a)
	return nil
}

func (s *Store) ListAppointmentsByClient(_ context.Context, clientID string) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Appointment
	for i := range s.appointments {
		if s.appointments[i].ClientID == clientID {
			out = append(out, s.appointments[i])
		}
	}
	return out, nil
}

func (s *Store) ListAppointmentsByProvider(_ context.Context, providerID string) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Appointment
	for i := range s.appointments {
		if s.appointments[i].ProviderID == providerID {
			out = append(out, s.appointments[i])
		}
	}
	return out, nil
}

// time.Time.Equal compares instants, so slots registered with a zone offset
// match lookups for the same moment in UTC.
func (s *Store) slotIndex(providerID string, at time.Time) int {
	for i := range s.slots {
		if s.slots[i].ProviderID == providerID && s.slots[i].At.Equal(at) {
			return i
		}
	}
	return -1
}
