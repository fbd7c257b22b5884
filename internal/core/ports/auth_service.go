package ports

import (
	"context"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and issues a new session. Unknown usernames
	// and wrong passwords fail identically with domain.ErrInvalidLogin.
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Logout revokes the session for token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// Validate resolves a bearer token to its session, deleting and rejecting
	// expired tokens on access. Invalid tokens yield domain.ErrUnauthorized.
	Validate(ctx context.Context, token string) (*domain.Session, error)
}
