package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in-process. Used when no REDIS_ADDR is
// configured; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

type memorySession struct {
	identity Identity
	expires  time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Issue(ctx context.Context, id Identity) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memorySession{identity: id, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (*Identity, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrTokenNotFound
	}
	if s.now().After(sess.expires) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrTokenNotFound
	}
	id := sess.identity
	return &id, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
