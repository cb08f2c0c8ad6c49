// AngelaMos | 2026
// repository.go

package plates

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

// Repository owns the plate registry. Unlike the other collections, plate
// uniqueness is enforced here at creation: a duplicate plate number fails
// with core.ErrDuplicateKey rather than relying on a caller pre-check alone.
type Repository interface {
	Create(ctx context.Context, p *LicensePlate) error
	GetByID(ctx context.Context, id int) (*LicensePlate, error)
	GetByPlateNumber(ctx context.Context, plateNumber string) (*LicensePlate, error)
	Update(ctx context.Context, p *LicensePlate) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]LicensePlate, error)
	Count(ctx context.Context) (int, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	plates map[int]*LicensePlate
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		plates: make(map[int]*LicensePlate),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, p *LicensePlate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.plates {
		if existing.PlateNumber == p.PlateNumber {
			return fmt.Errorf(
				"plate %s: %w", p.PlateNumber, core.ErrDuplicateKey)
		}
	}

	now := r.now()
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := *p
	r.plates[p.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(
	ctx context.Context,
	id int,
) (*LicensePlate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plates[id]
	if !ok {
		return nil, fmt.Errorf("plate %d: %w", id, core.ErrNotFound)
	}

	out := *p
	return &out, nil
}

func (r *memoryRepository) GetByPlateNumber(
	ctx context.Context,
	plateNumber string,
) (*LicensePlate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plates {
		if p.PlateNumber == plateNumber {
			out := *p
			return &out, nil
		}
	}
	return nil, fmt.Errorf("plate %s: %w", plateNumber, core.ErrNotFound)
}

func (r *memoryRepository) Update(ctx context.Context, p *LicensePlate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.plates[p.ID]
	if !ok {
		return fmt.Errorf("plate %d: %w", p.ID, core.ErrNotFound)
	}

	if p.PlateNumber != existing.PlateNumber {
		for id, other := range r.plates {
			if id != p.ID && other.PlateNumber == p.PlateNumber {
				return fmt.Errorf(
					"plate %s: %w", p.PlateNumber, core.ErrDuplicateKey)
			}
		}
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.now()

	stored := *p
	r.plates[p.ID] = &stored
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plates[id]; !ok {
		return fmt.Errorf("plate %d: %w", id, core.ErrNotFound)
	}
	delete(r.plates, id)
	return nil
}

func (r *memoryRepository) List(ctx context.Context) ([]LicensePlate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]LicensePlate, 0, len(r.plates))
	for _, p := range r.plates {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plates), nil
}
