package dto

import (
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Currency string `json:"currency"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the account it belongs to
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public projection of an account
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

// FcmTokenRequest is the payload for PUT /api/users/fcm-token
type FcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ToUserResponse converts a user entity to its response projection
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Currency:  user.Currency,
		CreatedAt: user.CreatedAt,
	}
}
