package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/corphunt/corphunt-api/internal/core/domain"
)

// RegistrationStore keeps pending signups in Redis, one entry per email.
// Key format: signup:<normalized email>. SET with a TTL gives both the
// overwrite-in-place semantics (a resend or repeat request replaces the
// entry) and server-side eviction of abandoned signups.
type RegistrationStore struct {
	client *redis.Client
}

// NewRegistrationStore creates a RegistrationStore wrapping the given client.
func NewRegistrationStore(client *redis.Client) *RegistrationStore {
	return &RegistrationStore{client: client}
}

func (s *RegistrationStore) Put(ctx context.Context, email string, reg *domain.PendingRegistration, ttl time.Duration) error {
	payload, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("encode pending registration: %w", err)
	}
	if err := s.client.Set(ctx, s.key(email), payload, ttl).Err(); err != nil {
		return fmt.Errorf("put pending registration: %w", err)
	}
	return nil
}

func (s *RegistrationStore) Get(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	payload, err := s.client.Get(ctx, s.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get pending registration: %w", err)
	}

	var reg domain.PendingRegistration
	if err := json.Unmarshal(payload, &reg); err != nil {
		return nil, fmt.Errorf("decode pending registration: %w", err)
	}
	return &reg, nil
}

func (s *RegistrationStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("delete pending registration: %w", err)
	}
	return nil
}

func (s *RegistrationStore) key(email string) string {
	return "signup:" + email
}
