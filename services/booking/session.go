package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sudsy/config"
	"sudsy/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionStore persists in-flight wizard drafts between HTTP requests. Each
// draft is owned by exactly one session id and discarded on confirmation,
// cancellation or TTL expiry.
type SessionStore interface {
	Create(ctx context.Context, draft *Draft) (string, error)
	Get(ctx context.Context, sessionID string) (*Draft, error)
	Save(ctx context.Context, sessionID string, draft *Draft) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds a SessionStore backed by the session cache.
func NewRedisSessionStore() SessionStore {
	return &redisSessionStore{
		client: utils.GetSessionCacheClient(),
		ttl:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
}

func (s *redisSessionStore) Create(ctx context.Context, draft *Draft) (string, error) {
	sessionID := uuid.New().String()
	if err := s.Save(ctx, sessionID, draft); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*Draft, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var draft Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &draft, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}
