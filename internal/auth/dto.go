// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/angelamos/precinct/internal/user"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username        string  `json:"username"        validate:"required,min=3,max=50"`
	Password        string  `json:"password"        validate:"required,min=8"`
	ConfirmPassword string  `json:"confirmPassword" validate:"required,eqfield=Password"`
	Email           string  `json:"email"           validate:"required,email"`
	FirstName       string  `json:"firstName"       validate:"required"`
	LastName        string  `json:"lastName"        validate:"required"`
	Role            string  `json:"role"            validate:"omitempty,oneof=user admin"`
	BadgeNumber     *string `json:"badgeNumber"     validate:"omitempty,max=50"`
	Department      *string `json:"department"      validate:"omitempty,max=100"`
	Position        *string `json:"position"        validate:"omitempty,max=100"`
	Phone           *string `json:"phone"           validate:"omitempty,max=30"`
}

type ForgotPasswordRequest struct {
	Username string `json:"username" validate:"required"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"           validate:"required"`
	Password        string `json:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginResponse struct {
	User user.UserResponse `json:"user"`
}

// ForgotPasswordResponse carries the same message whether or not the username
// matched an account. There is no outbound mail channel, so the token rides
// back in the response when one was issued.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
