package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"supplychain-assistant/internal/common/metrics"
	"supplychain-assistant/internal/models"
)

// RedisStore keeps each session's context as JSON under prefix+id. Every
// write refreshes the TTL; writes never recreate an expired session.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, s.key(id), "{}", s.ttl).Err(); err != nil {
		metrics.SessionStoreErrors.WithLabelValues("create").Inc()
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (models.ConversationContext, error) {
	var c models.ConversationContext

	raw, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return c, ErrSessionNotFound
	}
	if err != nil {
		metrics.SessionStoreErrors.WithLabelValues("load").Inc()
		return c, fmt.Errorf("load session %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		metrics.SessionStoreErrors.WithLabelValues("load").Inc()
		return models.ConversationContext{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, c models.ConversationContext) error {
	return s.write(ctx, "save", id, c)
}

func (s *RedisStore) Reset(ctx context.Context, id string) error {
	return s.write(ctx, "reset", id, models.ConversationContext{})
}

func (s *RedisStore) write(ctx context.Context, op, id string, c models.ConversationContext) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}

	ok, err := s.client.SetXX(ctx, s.key(id), string(data), s.ttl).Result()
	if err != nil {
		metrics.SessionStoreErrors.WithLabelValues(op).Inc()
		return fmt.Errorf("%s session %s: %w", op, id, err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}
