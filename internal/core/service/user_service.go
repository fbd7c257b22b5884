package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

// SeedUser is an account guaranteed to exist after startup.
type SeedUser struct {
	Username string
	Password string
	Role     string
}

// UserService implements admin user management. The seeded admin account can
// never be deleted, and every password reset revokes the user's sessions.
type UserService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	seedAdmin SeedUser
	seedStaff *SeedUser
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, sessions ports.SessionStore, seedAdmin SeedUser, seedStaff *SeedUser, log zerolog.Logger) *UserService {
	return &UserService{users: users, sessions: sessions, seedAdmin: seedAdmin, seedStaff: seedStaff, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Add(ctx context.Context, username, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	role = strings.TrimSpace(role)

	if username == "" || password == "" || role == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == domain.ErrUserExists {
			return nil, err
		}
		return nil, fmt.Errorf("add user: %w", err)
	}

	s.log.Info().Str("username", username).Str("role", role).Msg("user created")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if username == s.seedAdmin.Username {
		return domain.ErrCannotDeleteAdmin
	}
	if err := s.users.Delete(ctx, username); err != nil {
		if err == domain.ErrUserNotFound {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}

	// A deleted user must not keep a live session.
	if err := s.sessions.DeleteAllFor(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to revoke sessions of deleted user")
	}

	s.log.Info().Str("username", username).Msg("user deleted")
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if username == "" || newPassword == "" {
		return domain.ErrMissingFields
	}
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, username, string(hash)); err != nil {
		if err == domain.ErrUserNotFound {
			return err
		}
		return fmt.Errorf("reset password: %w", err)
	}

	// Forces re-login everywhere the old password was used.
	if err := s.sessions.DeleteAllFor(ctx, username); err != nil {
		return fmt.Errorf("reset password: revoke sessions: %w", err)
	}

	s.log.Info().Str("username", username).Msg("password reset, sessions revoked")
	return nil
}

// EnsureSeedUsers creates the seeded accounts when absent. Existing accounts,
// including their passwords, are never overwritten.
func (s *UserService) EnsureSeedUsers(ctx context.Context) error {
	seeds := []SeedUser{s.seedAdmin}
	if s.seedStaff != nil {
		seeds = append(seeds, *s.seedStaff)
	}

	for _, seed := range seeds {
		if _, err := s.users.FindByUsername(ctx, seed.Username); err == nil {
			continue
		} else if err != domain.ErrUserNotFound {
			return fmt.Errorf("seed users: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		user := &domain.User{
			Username:     seed.Username,
			PasswordHash: string(hash),
			Role:         seed.Role,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil && err != domain.ErrUserExists {
			return fmt.Errorf("seed users: %w", err)
		}
		s.log.Info().Str("username", seed.Username).Str("role", seed.Role).Msg("seed user created")
	}
	return nil
}
