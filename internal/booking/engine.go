// Package booking holds the booking engine: the only path that turns an
// availability slot into an appointment.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

var (
	ErrSlotUnavailable = errors.New("horário não disponível")
	ErrInvalidService  = errors.New("serviço inválido")
	ErrMissingFields   = errors.New("cabeleireiroId, servicoId e dataHora são obrigatórios")
)

type Engine struct {
	store store.Store
}

func New(st store.Store) *Engine {
	return &Engine{store: st}
}

type Request struct {
	ProviderID string
	ServiceID  string
	At         time.Time
}

// Create books the slot matching (req.ProviderID, req.At) for clientID.
// Checks run in a fixed order: fields present, slot exists, service exists,
// then the store commits the slot removal and the appointment insert as one
// unit. Of two concurrent callers for the same slot exactly one gets the
// appointment; the other gets ErrSlotUnavailable.
func (e *Engine) Create(ctx context.Context, clientID string, req Request) (*model.Appointment, error) {
	if req.ProviderID == "" || req.ServiceID == "" || req.At.IsZero() {
		return nil, ErrMissingFields
	}

	if _, err := e.store.FindSlot(ctx, req.ProviderID, req.At); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	if _, err := e.store.ServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidService
		}
		return nil, err
	}

	a := &model.Appointment{
		ID:         uuid.New().String(),
		ClientID:   clientID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		At:         req.At.UTC(),
		Status:     model.StatusBooked,
	}
	if err := e.store.Book(ctx, a); err != nil {
		// a racer consumed the slot between the check and the commit
		if errors.Is(err, store.ErrSlotUnavailable) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	return a, nil
}

// List returns the requester's appointments: their own bookings for clients,
// their agenda for providers, nothing for anyone else. Insertion order.
func (e *Engine) List(ctx context.Context, requesterID, role string) ([]model.Appointment, error) {
	switch role {
	case model.RoleClient:
		return e.store.ListAppointmentsByClient(ctx, requesterID)
	case model.RoleProvider:
		return e.store.ListAppointmentsByProvider(ctx, requesterID)
	default:
		return []model.Appointment{}, nil
	}
}
