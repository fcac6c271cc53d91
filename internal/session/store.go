// Package session keeps each chat session's conversation context between
// turns. Contexts are never shared across sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"supplychain-assistant/internal/common/config"
	"supplychain-assistant/internal/models"
)

var ErrSessionNotFound = errors.New("SESSION_NOT_FOUND")

// Store is the session-keyed context store.
type Store interface {
	// Create opens a session with an empty context and returns its id.
	Create(ctx context.Context) (string, error)
	Load(ctx context.Context, id string) (models.ConversationContext, error)
	// Save replaces the context of an existing session.
	Save(ctx context.Context, id string, c models.ConversationContext) error
	// Reset empties the context but keeps the session.
	Reset(ctx context.Context, id string) error
}

// New picks the backend named by cfg.Backend. rdb is only used by the redis
// backend.
func New(cfg config.SessionConfig, rdb *redis.Client) (Store, error) {
	switch cfg.Backend {
	case config.SessionBackendMemory, "":
		return NewMemoryStore(cfg.SessionTTL()), nil
	case config.SessionBackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis session backend needs a redis client")
		}
		return NewRedisStore(rdb, cfg.KeyPrefix, cfg.SessionTTL()), nil
	}
	return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
