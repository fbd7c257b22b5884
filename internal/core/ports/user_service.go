package ports

import (
	"context"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Add(ctx context.Context, username, password, role string) (*domain.User, error)
	// Delete removes a user and revokes their sessions. The seeded admin
	// account is refused unconditionally.
	Delete(ctx context.Context, username string) error
	// ResetPassword overwrites the hash and revokes every session of the
	// user, forcing a fresh login.
	ResetPassword(ctx context.Context, username, newPassword string) error
	// EnsureSeedUsers creates the seeded admin (and optional staff) account
	// on first start. Existing accounts are left untouched.
	EnsureSeedUsers(ctx context.Context) error
}
