package auth

import (
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// Claims is the identity carried by an access token
type Claims struct {
	UserID   string
	Email    string
	Username string
}

// TokenManager issues and validates access tokens
type TokenManager interface {
	Generate(user *entity.User) (token string, expiresAt time.Time, err error)
	Validate(token string) (*Claims, error)
}
