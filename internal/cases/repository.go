// AngelaMos | 2026
// repository.go

package cases

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

// Repository owns the case collection. Create assigns the id and the derived
// case number; Update and Delete fail with core.ErrNotFound for absent ids.
type Repository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id int) (*Case, error)
	Update(ctx context.Context, c *Case) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Case, error)
	Count(ctx context.Context) (int, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	cases  map[int]*Case
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		cases:  make(map[int]*Case),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, c *Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	c.ID = r.nextID
	r.nextID++
	c.CaseNumber = fmt.Sprintf("CASE-%d-%03d", now.Year(), c.ID)
	if c.Status == "" {
		c.Status = StatusOpen
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := *c
	r.cases[c.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int) (*Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cases[id]
	if !ok {
		return nil, fmt.Errorf("case %d: %w", id, core.ErrNotFound)
	}

	out := *c
	return &out, nil
}

func (r *memoryRepository) Update(ctx context.Context, c *Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.cases[c.ID]
	if !ok {
		return fmt.Errorf("case %d: %w", c.ID, core.ErrNotFound)
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = r.now()

	stored := *c
	r.cases[c.ID] = &stored
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cases[id]; !ok {
		return fmt.Errorf("case %d: %w", id, core.ErrNotFound)
	}
	delete(r.cases, id)
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Case, 0, len(r.cases))
	for _, c := range r.cases {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases), nil
}
