// AngelaMos | 2026
// memory_test.go

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

func newTestStore(ttl time.Duration) (*MemoryStore, *time.Time) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      func() time.Time { return now },
	}
	return s, &now
}

func TestCreateAndGet(t *testing.T) {
	s, _ := newTestStore(24 * time.Hour)
	ctx := context.Background()

	sess, err := s.Create(ctx, 42)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("empty session id")
	}
	if sess.UserID != 42 {
		t.Errorf("UserID = %d, want 42", sess.UserID)
	}

	got, err := s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 42 {
		t.Errorf("UserID = %d, want 42", got.UserID)
	}
}

func TestGetUnknownSession(t *testing.T) {
	s, _ := newTestStore(24 * time.Hour)

	_, err := s.Get(context.Background(), "no-such-session")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestExpiredSessionIsAbsent(t *testing.T) {
	s, now := newTestStore(time.Hour)
	ctx := context.Background()

	sess, err := s.Create(ctx, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	*now = now.Add(time.Hour + time.Second)

	if _, err := s.Get(ctx, sess.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSlidingExpiry(t *testing.T) {
	s, now := newTestStore(time.Hour)
	ctx := context.Background()

	sess, err := s.Create(ctx, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Touch the session just before it would expire, then advance past the
	// original deadline. The touch must have extended it.
	*now = now.Add(59 * time.Minute)
	if _, err := s.Get(ctx, sess.ID); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	*now = now.Add(30 * time.Minute)
	got, err := s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get after sliding: %v", err)
	}
	if got.UserID != 1 {
		t.Errorf("UserID = %d, want 1", got.UserID)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	ctx := context.Background()

	sess, err := s.Create(ctx, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}

	if _, err := s.Get(ctx, sess.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}

func TestCountSkipsExpired(t *testing.T) {
	s, now := newTestStore(time.Hour)
	ctx := context.Background()

	if _, err := s.Create(ctx, 1); err != nil {
		t.Fatalf("Create: %v", err)
	}
	first := *now

	*now = first.Add(30 * time.Minute)
	if _, err := s.Create(ctx, 2); err != nil {
		t.Fatalf("Create: %v", err)
	}

	*now = first.Add(90 * time.Minute)
	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}
