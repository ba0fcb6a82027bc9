package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// JWTManager implements the TokenManager interface with HMAC-signed JWTs
type JWTManager struct {
	secret       []byte
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
}

type tokenClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWT token manager
func NewJWTManager(secret string, tokenTTL time.Duration, timeProvider coreport.TimeProvider) *JWTManager {
	if secret == "" {
		panic("JWT secret cannot be empty")
	}
	return &JWTManager{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Generate issues a signed access token for the user
func (m *JWTManager) Generate(user *entity.User) (string, time.Time, error) {
	now := m.timeProvider.Now()
	expiresAt := now.Add(m.tokenTTL)

	claims := tokenClaims{
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses and verifies an access token and returns its claims
func (m *JWTManager) Validate(tokenString string) (*authport.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrUnauthorized
	}

	return &authport.Claims{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
