package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	City             string    `json:"city,omitempty"`
	AvatarURL        string    `json:"avatarUrl,omitempty"`
	Balance          float64   `json:"balance"`
	IsVerified       bool      `json:"isVerified"`
	Phone            string    `json:"phone,omitempty"`
	PhoneVerified    bool      `json:"phoneVerified"`
	IdentityVerified bool      `json:"identityVerified"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             string(user.Role),
		Status:           string(user.Status),
		City:             user.City,
		AvatarURL:        user.AvatarURL,
		Balance:          user.Balance,
		IsVerified:       user.IsVerified,
		Phone:            user.Phone,
		PhoneVerified:    user.PhoneVerified,
		IdentityVerified: user.IdentityVerified,
		CreatedAt:        user.CreatedAt,
	}
}

// PublicUserResponse hides contact and balance details from other users.
type PublicUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	City      string    `json:"city,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewPublicUserResponse(user *models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		City:      user.City,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	City      *string `json:"city" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,max=500"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,is-phone-ve"`
}

type VerifyOTPRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

type VerifyIdentityRequest struct {
	Cedula string `json:"cedula" validate:"required,is-cedula"`
}
