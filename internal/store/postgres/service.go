package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

func (s *Store) CreateService(ctx context.Context, sv *model.Service) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO services (id, name, duration_minutes, price, category, description)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		sv.ID, sv.Name, sv.Duration, sv.Price, sv.Category, sv.Description,
	)
	return err
}

func (s *Store) ServiceByID(ctx context.Context, id string) (*model.Service, error) {
	sv := &model.Service{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, duration_minutes, price, category, description
		 FROM services WHERE id = $1`, id,
	).Scan(&sv.ID, &sv.Name, &sv.Duration, &sv.Price, &sv.Category, &sv.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sv, nil
}

func (s *Store) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, duration_minutes, price, category, description
		 FROM services ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		var sv model.Service
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Duration, &sv.Price, &sv.Category, &sv.Description); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *Store) UpdateService(ctx context.Context, sv *model.Service) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE services
		 SET name=$1, duration_minutes=$2, price=$3, category=$4, description=$5
		 WHERE id=$6`,
		sv.Name, sv.Duration, sv.Price, sv.Category, sv.Description, sv.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var inUse bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments WHERE service_id = $1)`, id,
	).Scan(&inUse)
	if err != nil {
		return err
	}
	if inUse {
		return store.ErrServiceInUse
	}

	tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return tx.Commit(ctx)
}
