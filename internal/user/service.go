// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelamos/precinct/internal/core"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrSelfDelete    = errors.New("cannot delete your own account")
)

const (
	defaultOfficerPassword = "changeme123"

	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@police.gov"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	BadgeNumber *string
	Department  *string
	Position    *string
	Phone       *string
}

// Create pre-checks username and email uniqueness, hashes the password and
// stores the record. The repository itself does not enforce uniqueness.
func (s *Service) Create(ctx context.Context, p CreateParams) (*User, error) {
	if _, err := s.repo.GetByUsername(ctx, p.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.repo.GetByEmail(ctx, p.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	passwordHash, err := core.HashPassword(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: passwordHash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Role:         p.Role,
		BadgeNumber:  p.BadgeNumber,
		Department:   p.Department,
		Position:     p.Position,
		Phone:        p.Phone,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// CreateOfficer applies the officer defaults: the username falls back to the
// badge number, the password to a well-known initial value the officer is
// expected to change, and the role is always "user".
func (s *Service) CreateOfficer(
	ctx context.Context,
	req CreateOfficerRequest,
) (*User, error) {
	username := req.Username
	if username == "" {
		if req.BadgeNumber != nil && *req.BadgeNumber != "" {
			username = *req.BadgeNumber
		} else {
			username = fmt.Sprintf("officer_%d", time.Now().UnixMilli())
		}
	}

	password := req.Password
	if password == "" {
		password = defaultOfficerPassword
	}

	return s.Create(ctx, CreateParams{
		Username:    username,
		Password:    password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        RoleUser,
		BadgeNumber: req.BadgeNumber,
		Department:  req.Department,
		Position:    req.Position,
		Phone:       req.Phone,
	})
}

func (s *Service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) UpdateLastLogin(ctx context.Context, id int) error {
	return s.repo.UpdateLastLogin(ctx, id)
}

// UpdatePassword hashes and stores a new password for the user.
func (s *Service) UpdatePassword(
	ctx context.Context,
	id int,
	password string,
) error {
	hash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile merges the non-nil fields over the existing record. An email
// change is checked against every other user so the global uniqueness
// invariant holds through updates, not just creation.
func (s *Service) UpdateProfile(
	ctx context.Context,
	id int,
	req UpdateProfileRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.BadgeNumber != nil {
		u.BadgeNumber = req.BadgeNumber
	}
	if req.Department != nil {
		u.Department = req.Department
	}
	if req.Position != nil {
		u.Position = req.Position
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) UpdateOfficer(
	ctx context.Context,
	id int,
	req UpdateOfficerRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != u.Email {
		if err := s.checkEmailFree(ctx, *req.Email); err != nil {
			return nil, err
		}
		u.Email = *req.Email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.BadgeNumber != nil {
		u.BadgeNumber = req.BadgeNumber
	}
	if req.Department != nil {
		u.Department = req.Department
	}
	if req.Position != nil {
		u.Position = req.Position
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Delete removes a user. Deleting the acting account is always rejected,
// admin or not.
func (s *Service) Delete(ctx context.Context, requesterID, targetID int) error {
	if requesterID == targetID {
		return ErrSelfDelete
	}

	removed, err := s.repo.Delete(ctx, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}
	return nil
}

// RoleByID backs the admin guard: the role is re-read from the repository on
// every admin-gated request rather than trusted from a login-time snapshot.
func (s *Service) RoleByID(ctx context.Context, id int) (string, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// EnsureDefaultAdmin seeds the system administrator account on first start.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	if _, err := s.repo.GetByUsername(ctx, defaultAdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("check admin: %w", err)
	}

	badge := "ADMIN001"
	department := "IT"
	position := "System Administrator"
	phone := "+1-555-0000"

	_, err := s.Create(ctx, CreateParams{
		Username:    defaultAdminUsername,
		Password:    defaultAdminPassword,
		Email:       defaultAdminEmail,
		FirstName:   "System",
		LastName:    "Administrator",
		Role:        RoleAdmin,
		BadgeNumber: &badge,
		Department:  &department,
		Position:    &position,
		Phone:       &phone,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (s *Service) checkEmailFree(ctx context.Context, email string) error {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}
