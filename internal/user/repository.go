// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

// Repository owns the authoritative user collection. Create assigns the id
// and defaults but does not enforce username/email uniqueness; the service
// pre-checks both before calling it. UpdatePassword and UpdateLastLogin
// no-op on a missing user; Delete reports whether a record was removed.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) (bool, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	users  map[int]*User
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		users:  make(map[int]*User),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	u.ID = r.nextID
	r.nextID++
	if u.Role == "" {
		u.Role = RoleUser
	}
	u.IsActive = true
	u.ProfileImage = nil
	u.LastLoginAt = nil
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}

	copied := *u
	return &copied, nil
}

func (r *memoryRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
}

func (r *memoryRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (r *memoryRepository) Update(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}

	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = r.now()

	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *memoryRepository) UpdatePassword(
	ctx context.Context,
	id int,
	passwordHash string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = r.now()
	return nil
}

func (r *memoryRepository) UpdateLastLogin(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil
	}

	now := r.now()
	u.LastLoginAt = &now
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
