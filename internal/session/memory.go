// AngelaMos | 2026
// memory.go

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/precinct/internal/core"
)

const cleanupInterval = 5 * time.Minute

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart; a Redis store is available for deployments that need that.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
	go s.cleanup()
	return s
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := s.now()
		s.mu.Lock()
		for id, sess := range s.sessions {
			if now.After(sess.ExpiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

func (s *MemoryStore) Create(ctx context.Context, userID int) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || now.After(sess.ExpiresAt) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("get session: %w", core.ErrNotFound)
	}

	// Sliding expiry: every authenticated request extends the session.
	sess.ExpiresAt = now.Add(s.ttl)

	copied := *sess
	return &copied, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, sess := range s.sessions {
		if !now.After(sess.ExpiresAt) {
			count++
		}
	}
	return count, nil
}

var _ Store = (*MemoryStore)(nil)
