// AngelaMos | 2026
// repository.go

package ob

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

// Repository owns the occurrence book. Create assigns the id, the OB number
// and the booking timestamp; Update and Delete fail with core.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id int) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Entry, error)
	Count(ctx context.Context) (int, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[int]*Entry
	nextID  int
	now     func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		entries: make(map[int]*Entry),
		nextID:  1,
		now:     time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e.ID = r.nextID
	r.nextID++
	e.OBNumber = fmt.Sprintf("OB/%d/%04d", now.Year(), e.ID)
	e.DateTime = now
	if e.Status == "" {
		e.Status = StatusRecorded
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("ob entry %d: %w", id, core.ErrNotFound)
	}

	out := *e
	return &out, nil
}

func (r *memoryRepository) Update(ctx context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[e.ID]
	if !ok {
		return fmt.Errorf("ob entry %d: %w", e.ID, core.ErrNotFound)
	}

	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = r.now()

	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("ob entry %d: %w", id, core.ErrNotFound)
	}
	delete(r.entries, id)
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}
