package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-booking-api/internal/store"
)

func (s *Store) CreateRefreshToken(_ context.Context, userID, tokenHash string, expiresAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.tokens = append(s.tokens, store.RefreshToken{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	return id, nil
}

func (s *Store) RefreshTokenByHash(_ context.Context, tokenHash string) (*store.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tokens {
		if s.tokens[i].TokenHash == tokenHash {
			rt := s.tokens[i]
			return &rt, nil
		}
	}
	return nil, store.ErrNotFound
}

// rotate: revoke old token, create new one, link them
func (s *Store) RotateRefreshToken(_ context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tokens {
		if s.tokens[i].ID == oldID {
			s.tokens[i].Revoked = true
			replaced := newID
			s.tokens[i].ReplacedBy = &replaced
		}
	}
	s.tokens = append(s.tokens, store.RefreshToken{
		ID:        newID,
		UserID:    userID,
		TokenHash: newHash,
		ExpiresAt: newExpiry,
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *Store) RevokeAllRefreshTokens(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tokens {
		if s.tokens[i].UserID == userID {
			s.tokens[i].Revoked = true
		}
	}
	return nil
}
