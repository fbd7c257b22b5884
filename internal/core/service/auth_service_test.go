package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "carol", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(repo, sessions, time.Hour, testLogger())

	session, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected a token")
	}
	if len(session.Token) != tokenBytes*2 {
		t.Fatalf("expected %d hex chars, got %d", tokenBytes*2, len(session.Token))
	}
	if session.Username != "carol" || session.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", session)
	}
	if !session.ExpiresAt.After(session.IssuedAt) {
		t.Fatalf("expiry must be after issuance: %+v", session)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "dave", "goodpass", domain.RoleStaff)
	svc := NewAuthService(repo, sessions, time.Hour, testLogger())

	// Wrong password on a known user and an unknown user must be identical.
	_, wrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost", "whatever")

	if wrongPass != domain.ErrInvalidLogin {
		t.Fatalf("expected ErrInvalidLogin for wrong password, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidLogin {
		t.Fatalf("expected ErrInvalidLogin for unknown user, got %v", unknown)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubSessionStore(), time.Hour, testLogger())

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "user", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Validate(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "erin", "pass1234", domain.RoleStaff)
	svc := NewAuthService(repo, sessions, time.Hour, testLogger())

	session, err := svc.Login(context.Background(), "erin", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	got, err := svc.Validate(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got.Username != "erin" || got.Role != domain.RoleStaff {
		t.Fatalf("unexpected session: %+v", got)
	}

	if _, err := svc.Validate(context.Background(), "never-issued"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for unknown token, got %v", err)
	}
	if _, err := svc.Validate(context.Background(), ""); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}

func TestAuthService_Validate_ExpiredTokenSwept(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), sessions, time.Hour, testLogger())

	expired := &domain.Session{
		Token:     "expired-token",
		Username:  "erin",
		Role:      domain.RoleStaff,
		IssuedAt:  time.Now().UTC().Add(-2 * time.Hour),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	_ = sessions.Save(context.Background(), expired, time.Hour)

	if _, err := svc.Validate(context.Background(), expired.Token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
	// The sweep deletes on access: the token is gone from the store.
	if found, _ := sessions.Find(context.Background(), expired.Token); found != nil {
		t.Fatalf("expired session must be deleted on access")
	}
}

func TestAuthService_Logout(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	seedUser(t, repo, "frank", "pass1234", domain.RoleStaff)
	svc := NewAuthService(repo, sessions, time.Hour, testLogger())

	session, err := svc.Login(context.Background(), "frank", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Validate(context.Background(), session.Token); err != domain.ErrUnauthorized {
		t.Fatalf("revoked token must never validate again, got %v", err)
	}

	// Revoking unknown or empty tokens is a no-op success.
	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("double logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-token logout failed: %v", err)
	}
}
