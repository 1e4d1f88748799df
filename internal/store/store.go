package store

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/model"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrServiceInUse    = errors.New("service has appointments")
)

// Store is the persistence surface the API is wired against. The in-memory
// backend is the default; setting DATABASE_URL selects postgres.
type Store interface {
	UserStore
	ServiceStore
	BookingStore
	RefreshTokenStore
}

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

type ServiceStore interface {
	CreateService(ctx context.Context, s *model.Service) error
	ServiceByID(ctx context.Context, id string) (*model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	// UpdateService writes the full row; the handler merges partial fields first.
	UpdateService(ctx context.Context, s *model.Service) error
	// DeleteService fails with ErrServiceInUse while appointments reference the service.
	DeleteService(ctx context.Context, id string) error
}

// BookingStore owns both the availability slots and the appointments:
// Book is the only way an appointment comes into existence.
type BookingStore interface {
	RegisterSlot(ctx context.Context, s *model.Slot) error
	FindSlot(ctx context.Context, providerID string, at time.Time) (*model.Slot, error)
	// RemoveSlot is idempotent by identity: removing an already-removed slot
	// reports ErrNotFound rather than corrupting state.
	RemoveSlot(ctx context.Context, id string) error
	ListSlotsByProvider(ctx context.Context, providerID string) ([]model.Slot, error)

	// Book consumes the slot matching (a.ProviderID, a.At) and inserts a as one
	// unit. ErrSlotUnavailable when no such slot exists or a concurrent caller
	// took it first; on that error nothing was mutated.
	Book(ctx context.Context, a *model.Appointment) error
	ListAppointmentsByClient(ctx context.Context, clientID string) ([]model.Appointment, error)
	ListAppointmentsByProvider(ctx context.Context, providerID string) ([]model.Appointment, error)
}

type RefreshToken struct {
	ID         string
	UserID     string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

type RefreshTokenStore interface {
	CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error)
	RefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	// RotateRefreshToken revokes the old token, inserts the replacement and
	// links the two, as one unit.
	RotateRefreshToken(ctx context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
}
