package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

func (s *Store) RegisterSlot(ctx context.Context, sl *model.Slot) error {
	// TODO: reject a second slot for the same (provider, instant) pair
	_, err := s.pool.Exec(ctx,
		`INSERT INTO availability_slots (id, provider_id, starts_at) VALUES ($1,$2,$3)`,
		sl.ID, sl.ProviderID, sl.At,
	)
	return err
}

func (s *Store) FindSlot(ctx context.Context, providerID string, at time.Time) (*model.Slot, error) {
	sl := &model.Slot{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, provider_id, starts_at FROM availability_slots
		 WHERE provider_id = $1 AND starts_at = $2
		 ORDER BY created_at LIMIT 1`, providerID, at,
	).Scan(&sl.ID, &sl.ProviderID, &sl.At)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *Store) RemoveSlot(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM availability_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListSlotsByProvider(ctx context.Context, providerID string) ([]model.Slot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, provider_id, starts_at FROM availability_slots
		 WHERE provider_id = $1 ORDER BY created_at`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Slot
	for rows.Next() {
		var sl model.Slot
		if err := rows.Scan(&sl.ID, &sl.ProviderID, &sl.At); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

// Book runs the compare-and-remove and the insert in one transaction. The
// conditional DELETE is the serialization point: of two racers, one deletes
// the row and commits, the other deletes nothing and rolls back. The unique
// index on appointments (provider_id, starts_at) backstops the invariant.
func (s *Store) Book(ctx context.Context, a *model.Appointment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var slotID string
	err = tx.QueryRow(ctx,
		`DELETE FROM availability_slots
		 WHERE id IN (
			 SELECT id FROM availability_slots
			 WHERE provider_id = $1 AND starts_at = $2
			 ORDER BY created_at LIMIT 1
		 )
		 RETURNING id`, a.ProviderID, a.At,
	).Scan(&slotID)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrSlotUnavailable
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO appointments (id, client_id, provider_id, service_id, starts_at, status)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.ClientID, a.ProviderID, a.ServiceID, a.At, a.Status,
	)
	if isUniqueViolation(err) {
		return store.ErrSlotUnavailable
	}
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) ListAppointmentsByClient(ctx context.Context, clientID string) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `client_id`, clientID)
}

func (s *Store) ListAppointmentsByProvider(ctx context.Context, providerID string) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `provider_id`, providerID)
}

func (s *Store) listAppointments(ctx context.Context, col, id string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, client_id, provider_id, service_id, starts_at, status
		 FROM appointments WHERE `+col+` = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.ClientID, &a.ProviderID, &a.ServiceID, &a.At, &a.Status); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
