package ports

import (
	"context"
	"time"

	"github.com/corphunt/corphunt-api/internal/core/domain"
)

// RegistrationStore is the transient keyed store holding at most one pending
// signup per normalized email. Put overwrites any existing entry for the same
// email; entries older than the given TTL must eventually be evicted by the
// backing store so abandoned signups do not accumulate.
type RegistrationStore interface {
	Put(ctx context.Context, email string, reg *domain.PendingRegistration, ttl time.Duration) error
	Get(ctx context.Context, email string) (*domain.PendingRegistration, error)
	Delete(ctx context.Context, email string) error
}
