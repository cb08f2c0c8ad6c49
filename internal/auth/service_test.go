// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelamos/precinct/internal/core"
	"github.com/angelamos/precinct/internal/session"
	"github.com/angelamos/precinct/internal/user"
)

func newTestService(t *testing.T) (*Service, *user.Service, *memoryTokenRepository) {
	t.Helper()

	users := user.NewService(user.NewMemoryRepository())
	if err := users.EnsureDefaultAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureDefaultAdmin: %v", err)
	}

	tokens := &memoryTokenRepository{
		tokens: make(map[string]*ResetToken),
		now:    time.Now,
	}
	sessions := session.NewMemoryStore(time.Hour)

	return NewService(users, sessions, tokens), users, tokens
}

func TestLoginSeededAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	u, sess, err := svc.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Role != user.RoleAdmin {
		t.Errorf("Role = %q, want admin", u.Role)
	}
	if u.LastLoginAt == nil {
		t.Error("LastLoginAt not stamped on login")
	}
	if sess.UserID != u.ID {
		t.Errorf("session UserID = %d, want %d", sess.UserID, u.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	u, err := users.Create(ctx, user.CreateParams{
		Username:  "jdoe",
		Password:  "password123",
		Email:     "jdoe@police.gov",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	inactive := false
	if _, err := users.UpdateOfficer(ctx, u.ID, user.UpdateOfficerRequest{
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("UpdateOfficer: %v", err)
	}

	_, _, err = svc.Login(ctx, "jdoe", "password123")
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, sess, err := svc.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := svc.Logout(ctx, sess.ID); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestForgotPasswordUnknownUsername(t *testing.T) {
	svc, _, tokens := newTestService(t)

	token, err := svc.ForgotPassword(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if token != "" {
		t.Error("token issued for unknown username")
	}
	if len(tokens.tokens) != 0 {
		t.Error("token persisted for unknown username")
	}
}

func TestForgotPasswordIssuesToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	token, err := svc.ForgotPassword(context.Background(), "admin")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64", len(token))
	}
}

func TestResetPasswordSingleUse(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	token, err := svc.ForgotPassword(ctx, "admin")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	if err := svc.ResetPassword(ctx, token, "newpassword1"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	// Old password rejected, new one accepted.
	if _, _, err := svc.Login(ctx, "admin", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "admin", "newpassword1"); err != nil {
		t.Errorf("new password: %v", err)
	}

	// Token consumed.
	err = svc.ResetPassword(ctx, token, "another1234")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused token: err = %v, want ErrInvalidToken", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	issued := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }

	token, err := svc.ForgotPassword(ctx, "admin")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	tokens.now = func() time.Time { return issued.Add(time.Hour + time.Minute) }

	err = svc.ResetPassword(ctx, token, "newpassword1")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestResetPasswordBogusToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ResetPassword(context.Background(), "deadbeef", "newpassword1")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenRepositoryExpiryIsAbsence(t *testing.T) {
	issued := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := &memoryTokenRepository{
		tokens: make(map[string]*ResetToken),
		now:    func() time.Time { return issued },
	}
	ctx := context.Background()

	if err := repo.Create(ctx, 7, "tok"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	userID, err := repo.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if userID != 7 {
		t.Errorf("userID = %d, want 7", userID)
	}

	repo.now = func() time.Time { return issued.Add(2 * time.Hour) }

	if _, err := repo.Get(ctx, "tok"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expired token: err = %v, want ErrNotFound", err)
	}
}
