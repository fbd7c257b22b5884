package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

type stubAuthService struct {
	sessions map[string]*domain.Session
}

func (s *stubAuthService) Login(context.Context, string, string) (*domain.Session, error) {
	panic("not used")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return nil
}

func (s *stubAuthService) Validate(_ context.Context, token string) (*domain.Session, error) {
	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, domain.ErrUnauthorized
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{sessions: map[string]*domain.Session{
		"good-token": {Token: "good-token", Username: "alice", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(auth)(func(c echo.Context) error {
		called = true
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_Rejections(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{sessions: map[string]*domain.Session{}}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"no token", "Bearer "},
		{"unknown token", "Bearer never-issued"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(auth)(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", tc.name)
			return nil
		})

		if err := handler(c); err != domain.ErrUnauthorized {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", tc.name, err)
		}
	}
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "bearer abc123")
	c := e.NewContext(req, httptest.NewRecorder())
	if got := BearerToken(c); got != "abc123" {
		t.Fatalf("scheme match must be case-insensitive, got %q", got)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if got := BearerToken(c); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}
