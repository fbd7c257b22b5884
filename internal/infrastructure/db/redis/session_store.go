package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

const (
	sessionKeyPrefix = "sess:"
	userIndexPrefix  = "sess:user:"
)

// SessionStore keeps bearer-token sessions in Redis. Session values expire
// via key TTL; a per-user index set supports revoking every session of a
// username at once (password reset, user deletion).
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

type sessionRecord struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(sessionRecord{
		Username:  session.Username,
		Role:      session.Role,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(session.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	idx := s.userIndexKey(session.Username)
	if err := s.client.SAdd(ctx, idx, session.Token).Err(); err != nil {
		return fmt.Errorf("index session: %w", err)
	}
	// The index only needs to outlive the longest-lived member.
	if err := s.client.Expire(ctx, idx, ttl).Err(); err != nil {
		return fmt.Errorf("expire session index: %w", err)
	}
	return nil
}

// Find returns (nil, nil) for tokens Redis no longer holds, whether they were
// never issued or already expired out.
func (s *SessionStore) Find(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &domain.Session{
		Token:     token,
		Username:  rec.Username,
		Role:      rec.Role,
		IssuedAt:  rec.IssuedAt,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	session, err := s.Find(ctx, token)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if session != nil {
		if err := s.client.SRem(ctx, s.userIndexKey(session.Username), token).Err(); err != nil {
			return fmt.Errorf("unindex session: %w", err)
		}
	}
	return nil
}

func (s *SessionStore) DeleteAllFor(ctx context.Context, username string) error {
	idx := s.userIndexKey(username)
	tokens, err := s.client.SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("list sessions for %q: %w", username, err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, s.sessionKey(token))
	}
	keys = append(keys, idx)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete sessions for %q: %w", username, err)
	}
	return nil
}

func (s *SessionStore) sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s *SessionStore) userIndexKey(username string) string {
	return userIndexPrefix + username
}
