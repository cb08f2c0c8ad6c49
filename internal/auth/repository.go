// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

const resetTokenTTL = time.Hour

// TokenRepository stores password-reset tokens. Get treats an expired token
// exactly like an unknown one; Delete is unconditional.
type TokenRepository interface {
	Create(ctx context.Context, userID int, token string) error
	Get(ctx context.Context, token string) (int, error)
	Delete(ctx context.Context, token string) error
}

type memoryTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*ResetToken
	now    func() time.Time
}

func NewMemoryTokenRepository() TokenRepository {
	return &memoryTokenRepository{
		tokens: make(map[string]*ResetToken),
		now:    time.Now,
	}
}

func (r *memoryTokenRepository) Create(
	ctx context.Context,
	userID int,
	token string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.tokens[token] = &ResetToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(resetTokenTTL),
	}
	return nil
}

func (r *memoryTokenRepository) Get(
	ctx context.Context,
	token string,
) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[token]
	if !ok || r.now().After(t.ExpiresAt) {
		delete(r.tokens, token)
		return 0, fmt.Errorf("get reset token: %w", core.ErrNotFound)
	}
	return t.UserID, nil
}

func (r *memoryTokenRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
	return nil
}
