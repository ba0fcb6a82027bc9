package entity

import (
	"time"
)

// User represents an account holder
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Currency     string
	FcmToken     string // push notification token; empty when no device registered
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// HasPushToken reports whether the user can receive push notifications
func (u *User) HasPushToken() bool {
	return u.FcmToken != ""
}
