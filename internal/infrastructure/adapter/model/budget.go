package model

import (
	"time"
)

// Budget represents the database model for budgets
type Budget struct {
	ID                     string    `gorm:"primaryKey;size:36"`
	Title                  string    `gorm:"not null;size:255"`
	Description            string    `gorm:"type:text"`
	AmountInCents          int64     `gorm:"not null"`
	Category               string    `gorm:"size:255"`
	CategoryID             string    `gorm:"size:36"`
	ReceiveAlert           bool      `gorm:"not null;default:false"`
	ReceiveAlertPercentage float64   `gorm:"not null;default:0"`
	ProgressValueInCents   int64     `gorm:"not null;default:0"`
	LimitExceeded          bool      `gorm:"not null;default:false"`
	Status                 string    `gorm:"not null;size:50;index"`
	CreatedBy              string    `gorm:"not null;size:36;index"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              *time.Time
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
