// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	BadgeNumber  *string
	Department   *string
	Position     *string
	Phone        *string
	ProfileImage *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
