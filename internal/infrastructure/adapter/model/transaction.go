package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID                       string    `gorm:"primaryKey;size:36"`
	Type                     string    `gorm:"not null;size:50;index"`
	AmountInCents            int64     `gorm:"not null"`
	Currency                 string    `gorm:"size:10"`
	Category                 string    `gorm:"size:255;index"`
	Description              string    `gorm:"type:text"`
	InvoiceURL               string    `gorm:"size:512"`
	UserID                   string    `gorm:"not null;size:36;index"`
	Username                 string    `gorm:"size:255"`
	BudgetID                 string    `gorm:"size:36;index"`
	Account                  string    `gorm:"size:50"`
	RepeatTransaction        bool      `gorm:"not null;default:false"`
	RepeatInterval           int       `gorm:"not null;default:0"`
	RepeatFrequency          string    `gorm:"size:50"`
	RepeatTransactionEndDate *time.Time
	Month                    int       `gorm:"not null;index"`
	Year                     int       `gorm:"not null;index"`
	CreatedAt                time.Time `gorm:"not null;index"`
	CreatedBy                string    `gorm:"size:255"`
	UpdatedAt                *time.Time
	UpdatedBy                string `gorm:"size:255"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
