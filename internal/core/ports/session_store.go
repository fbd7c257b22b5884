package ports

import (
	"context"
	"time"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

// SessionStore persists bearer-token sessions. Find returns (nil, nil) for an
// unknown token; lazy expiry on access is the session service's job.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteAllFor(ctx context.Context, username string) error
}
