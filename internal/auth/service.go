// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelamos/precinct/internal/core"
	"github.com/angelamos/precinct/internal/session"
	"github.com/angelamos/precinct/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired reset token")
)

type Service struct {
	users    *user.Service
	sessions session.Store
	tokens   TokenRepository
}

func NewService(
	users *user.Service,
	sessions session.Store,
	tokens TokenRepository,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login verifies credentials and opens a session. Password verification runs
// even when the username is unknown so a lookup miss costs the same as a
// mismatch.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (*user.User, *session.Session, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	var hash *string
	if u != nil {
		hash = &u.PasswordHash
	}

	ok, err := core.VerifyPasswordTimingSafe(password, hash)
	if err != nil {
		return nil, nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok || u == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID); err != nil {
		return nil, nil, fmt.Errorf("stamp last login: %w", err)
	}

	sess, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	return u, sess, nil
}

// Logout destroys the session. Unknown session ids are not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) CurrentUser(ctx context.Context, userID int) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ForgotPassword issues a reset token for the named account. A token is
// generated whether or not the username exists so the two paths do the same
// work; it is only persisted (and returned) when the account is real.
func (s *Service) ForgotPassword(
	ctx context.Context,
	username string,
) (string, error) {
	token, err := core.GenerateResetToken()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := s.tokens.Create(ctx, u.ID, token); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	return token, nil
}

// ResetPassword consumes a token: the password is overwritten and the token
// deleted, so a second attempt with the same token fails.
func (s *Service) ResetPassword(
	ctx context.Context,
	token, password string,
) error {
	userID, err := s.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("lookup reset token: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, password); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return s.tokens.Delete(ctx, token)
}

// Register creates an account with an explicit role. Reserved for admins; the
// officer defaults live in user.Service.CreateOfficer instead.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*user.User, error) {
	role := req.Role
	if role == "" {
		role = user.RoleUser
	}

	return s.users.Create(ctx, user.CreateParams{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        role,
		BadgeNumber: req.BadgeNumber,
		Department:  req.Department,
		Position:    req.Position,
		Phone:       req.Phone,
	})
}
