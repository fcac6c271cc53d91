package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"supplychain-assistant/internal/models"
)

type memoryEntry struct {
	context   models.ConversationContext
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired sessions are dropped
// when next touched.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a store whose sessions expire ttl after their last
// write. A zero ttl never expires.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = memoryEntry{expiresAt: expiry(s.now(), s.ttl)}
	return id, nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (models.ConversationContext, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.expired(entry) {
		if ok {
			s.mu.Lock()
			delete(s.sessions, id)
			s.mu.Unlock()
		}
		return models.ConversationContext{}, ErrSessionNotFound
	}
	return entry.context, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, c models.ConversationContext) error {
	return s.put(id, c)
}

func (s *MemoryStore) Reset(_ context.Context, id string) error {
	return s.put(id, models.ConversationContext{})
}

// Len reports how many sessions are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) put(id string, c models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || s.expired(entry) {
		delete(s.sessions, id)
		return ErrSessionNotFound
	}
	s.sessions[id] = memoryEntry{context: c, expiresAt: expiry(s.now(), s.ttl)}
	return nil
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}
