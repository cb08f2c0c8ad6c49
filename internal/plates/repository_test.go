// AngelaMos | 2026
// repository_test.go

package plates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

func newTestRepository() *memoryRepository {
	return &memoryRepository{
		plates: make(map[int]*LicensePlate),
		nextID: 1,
		now:    time.Now,
	}
}

func seedPlate(t *testing.T, r Repository, number string) *LicensePlate {
	t.Helper()

	p := &LicensePlate{
		PlateNumber: number,
		OwnerName:   "Jane Doe",
		AddedByID:   1,
	}
	if err := r.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return p
}

func TestCreateRejectsDuplicatePlateNumber(t *testing.T) {
	r := newTestRepository()

	seedPlate(t, r, "ABC-123")

	dup := &LicensePlate{
		PlateNumber: "ABC-123",
		OwnerName:   "Someone Else",
		AddedByID:   2,
	}
	err := r.Create(context.Background(), dup)
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
}

func TestGetByPlateNumber(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	seedPlate(t, r, "ABC-123")
	seedPlate(t, r, "XYZ-789")

	p, err := r.GetByPlateNumber(ctx, "XYZ-789")
	if err != nil {
		t.Fatalf("GetByPlateNumber: %v", err)
	}
	if p.PlateNumber != "XYZ-789" {
		t.Errorf("PlateNumber = %q", p.PlateNumber)
	}

	_, err = r.GetByPlateNumber(ctx, "NOPE-000")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateRejectsPlateNumberCollision(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	seedPlate(t, r, "ABC-123")
	second := seedPlate(t, r, "XYZ-789")

	second.PlateNumber = "ABC-123"
	err := r.Update(ctx, second)
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
}

func TestUpdateKeepingOwnPlateNumber(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	p := seedPlate(t, r, "ABC-123")

	p.OwnerName = "New Owner"
	if err := r.Update(ctx, p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.OwnerName != "New Owner" {
		t.Errorf("OwnerName = %q", got.OwnerName)
	}
}

func TestDeleteMissingPlate(t *testing.T) {
	r := newTestRepository()

	err := r.Delete(context.Background(), 99)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
