// AngelaMos | 2026
// repository_test.go

package ob

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

func newTestRepository(now time.Time) *memoryRepository {
	return &memoryRepository{
		entries: make(map[int]*Entry),
		nextID:  1,
		now:     func() time.Time { return now },
	}
}

func newEntry() *Entry {
	return &Entry{
		Type:               "theft",
		Description:        "bicycle reported stolen",
		ReportedBy:         "John Citizen",
		RecordingOfficerID: 2,
	}
}

func TestCreateAssignsOBNumber(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRepository(now)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		e := newEntry()
		if err := r.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}

		want := fmt.Sprintf("OB/2026/%04d", i)
		if e.OBNumber != want {
			t.Errorf("OBNumber = %q, want %q", e.OBNumber, want)
		}
	}
}

func TestCreateStampsBookingTime(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRepository(now)

	e := newEntry()
	if err := r.Create(context.Background(), e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !e.DateTime.Equal(now) {
		t.Errorf("DateTime = %v, want %v", e.DateTime, now)
	}
	if e.Status != StatusRecorded {
		t.Errorf("Status = %q, want %q", e.Status, StatusRecorded)
	}
}

func TestUpdateMergesAndRefreshes(t *testing.T) {
	created := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRepository(created)
	ctx := context.Background()

	e := newEntry()
	if err := r.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	r.now = func() time.Time { return created.Add(time.Hour) }

	e.Status = "closed"
	if err := r.Update(ctx, e); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := r.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != "closed" {
		t.Errorf("Status = %q, want closed", got.Status)
	}
	if !got.CreatedAt.Equal(created) {
		t.Error("CreatedAt changed on update")
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("UpdatedAt not refreshed")
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	r := newTestRepository(time.Now())

	err := r.Update(context.Background(), &Entry{ID: 99})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingEntry(t *testing.T) {
	r := newTestRepository(time.Now())

	err := r.Delete(context.Background(), 99)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
