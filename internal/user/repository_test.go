// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

func newTestRepository() *memoryRepository {
	return &memoryRepository{
		users:  make(map[int]*User),
		nextID: 1,
		now:    time.Now,
	}
}

func seedUser(t *testing.T, r Repository, username, email string) *User {
	t.Helper()

	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
	}
	if err := r.Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return u
}

func TestCreateAppliesDefaults(t *testing.T) {
	r := newTestRepository()

	u := seedUser(t, r, "jdoe", "jdoe@police.gov")

	if u.ID != 1 {
		t.Errorf("ID = %d, want 1", u.ID)
	}
	if u.Role != RoleUser {
		t.Errorf("Role = %q, want %q", u.Role, RoleUser)
	}
	if !u.IsActive {
		t.Error("IsActive = false, want true")
	}
	if u.LastLoginAt != nil {
		t.Error("LastLoginAt should start nil")
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestGetByUsernameAndEmail(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	seedUser(t, r, "jdoe", "jdoe@police.gov")
	seedUser(t, r, "asmith", "asmith@police.gov")

	u, err := r.GetByUsername(ctx, "asmith")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u.Email != "asmith@police.gov" {
		t.Errorf("Email = %q", u.Email)
	}

	u, err = r.GetByEmail(ctx, "jdoe@police.gov")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Username != "jdoe" {
		t.Errorf("Username = %q", u.Username)
	}

	if _, err := r.GetByUsername(ctx, "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateMissingUser(t *testing.T) {
	r := newTestRepository()

	err := r.Update(context.Background(), &User{ID: 99, Username: "x"})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	u := seedUser(t, r, "jdoe", "jdoe@police.gov")
	created := u.CreatedAt

	u.FirstName = "Jane"
	if err := r.Update(ctx, u); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := r.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Error("CreatedAt changed on update")
	}
	if got.FirstName != "Jane" {
		t.Errorf("FirstName = %q, want Jane", got.FirstName)
	}
}

func TestUpdatePasswordNoOpOnAbsentUser(t *testing.T) {
	r := newTestRepository()

	if err := r.UpdatePassword(context.Background(), 42, "newhash"); err != nil {
		t.Errorf("UpdatePassword on absent user: %v", err)
	}
}

func TestUpdateLastLogin(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	u := seedUser(t, r, "jdoe", "jdoe@police.gov")

	if err := r.UpdateLastLogin(ctx, u.ID); err != nil {
		t.Fatalf("UpdateLastLogin: %v", err)
	}

	got, err := r.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.LastLoginAt == nil {
		t.Error("LastLoginAt still nil after UpdateLastLogin")
	}

	if err := r.UpdateLastLogin(ctx, 999); err != nil {
		t.Errorf("UpdateLastLogin on absent user: %v", err)
	}
}

func TestDeleteReportsRemoval(t *testing.T) {
	r := newTestRepository()
	ctx := context.Background()

	u := seedUser(t, r, "jdoe", "jdoe@police.gov")

	removed, err := r.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("removed = false for existing user")
	}

	removed, err = r.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if removed {
		t.Error("removed = true for already-deleted user")
	}
}

func TestListSortedByID(t *testing.T) {
	r := newTestRepository()

	seedUser(t, r, "b", "b@police.gov")
	seedUser(t, r, "a", "a@police.gov")
	seedUser(t, r, "c", "c@police.gov")

	users, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len = %d, want 3", len(users))
	}
	for i, u := range users {
		if u.ID != i+1 {
			t.Errorf("users[%d].ID = %d, want %d", i, u.ID, i+1)
		}
	}
}
