// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// ResetToken is a single-use password-reset credential. Expired tokens are
// never returned by the repository, so callers cannot tell an expired token
// from one that never existed.
type ResetToken struct {
	Token     string
	UserID    int
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (t *ResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
