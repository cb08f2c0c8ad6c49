// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type CreateOfficerRequest struct {
	Username    string  `json:"username"              validate:"omitempty,min=3,max=50"`
	Password    string  `json:"password"              validate:"omitempty,min=6,max=128"`
	Email       string  `json:"email"                 validate:"required,email,max=255"`
	FirstName   string  `json:"firstName"             validate:"required,min=1,max=100"`
	LastName    string  `json:"lastName"              validate:"required,min=1,max=100"`
	BadgeNumber *string `json:"badgeNumber,omitempty" validate:"omitempty,max=50"`
	Department  *string `json:"department,omitempty"  validate:"omitempty,max=100"`
	Position    *string `json:"position,omitempty"    validate:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty"       validate:"omitempty,max=30"`
}

type UpdateOfficerRequest struct {
	Email       *string `json:"email,omitempty"       validate:"omitempty,email,max=255"`
	FirstName   *string `json:"firstName,omitempty"   validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"lastName,omitempty"    validate:"omitempty,min=1,max=100"`
	Role        *string `json:"role,omitempty"        validate:"omitempty,oneof=user admin"`
	BadgeNumber *string `json:"badgeNumber,omitempty" validate:"omitempty,max=50"`
	Department  *string `json:"department,omitempty"  validate:"omitempty,max=100"`
	Position    *string `json:"position,omitempty"    validate:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty"       validate:"omitempty,max=30"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type UpdateProfileRequest struct {
	Email       *string `json:"email,omitempty"       validate:"omitempty,email,max=255"`
	FirstName   *string `json:"firstName,omitempty"   validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"lastName,omitempty"    validate:"omitempty,min=1,max=100"`
	BadgeNumber *string `json:"badgeNumber,omitempty" validate:"omitempty,max=50"`
	Department  *string `json:"department,omitempty"  validate:"omitempty,max=100"`
	Position    *string `json:"position,omitempty"    validate:"omitempty,max=100"`
	Phone       *string `json:"phone,omitempty"       validate:"omitempty,max=30"`
}

// UserResponse is the wire shape for a user. The password hash has no field
// here, so it can never leak into a response.
type UserResponse struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         string     `json:"role"`
	BadgeNumber  *string    `json:"badgeNumber"`
	Department   *string    `json:"department"`
	Position     *string    `json:"position"`
	Phone        *string    `json:"phone"`
	ProfileImage *string    `json:"profileImage"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

type OfficersResponse struct {
	Officers []UserResponse `json:"officers"`
}

type OfficerResponse struct {
	Officer UserResponse `json:"officer"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		BadgeNumber:  u.BadgeNumber,
		Department:   u.Department,
		Position:     u.Position,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
