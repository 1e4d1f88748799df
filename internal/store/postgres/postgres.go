// Package postgres is the durable backend, selected by DATABASE_URL.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-booking-api/internal/store"
)

type Store struct {
	pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
