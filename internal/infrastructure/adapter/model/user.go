package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	Username     string    `gorm:"size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	Currency     string    `gorm:"size:10"`
	FcmToken     string    `gorm:"size:512"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    *time.Time
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
