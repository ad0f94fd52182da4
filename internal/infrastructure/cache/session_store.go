package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courseadmin/internal/domain"

	"github.com/redis/go-redis/v9"
)

type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrSessionExpired
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	var session domain.Session
	val, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session, domain.ErrSessionNotFound
	}
	if err != nil {
		return session, err
	}
	if err := json.Unmarshal(val, &session); err != nil {
		return session, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
