// AngelaMos | 2026
// session.go

package session

import (
	"context"
	"time"
)

// Session binds a client-held opaque identifier to an authenticated user.
// Only the user id is stored; role checks re-read the user record so a
// demotion takes effect without waiting for the session to expire.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the server-side session registry. Get slides the expiry forward
// by the store TTL, and reports expired sessions the same way as unknown
// ones (core.ErrNotFound). Delete is idempotent.
type Store interface {
	Create(ctx context.Context, userID int) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
