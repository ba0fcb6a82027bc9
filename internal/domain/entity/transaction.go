package entity

import (
	"fmt"
	"time"

	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// TransactionType represents the direction of a transaction
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// RepeatFrequency represents how often a recurring transaction repeats
type RepeatFrequency string

// Repeat frequencies
const (
	RepeatDaily   RepeatFrequency = "Daily"
	RepeatWeekly  RepeatFrequency = "Weekly"
	RepeatMonthly RepeatFrequency = "Monthly"
	RepeatYearly  RepeatFrequency = "Yearly"
)

// Transaction represents a single income or expense entry. A transaction may
// be tied to a budget via BudgetID; keeping that budget's progress in sync is
// handled asynchronously and is eventually consistent with this record.
type Transaction struct {
	ID                       string
	Type                     TransactionType
	AmountInCents            int64
	Currency                 string
	Category                 string
	Description              string
	InvoiceURL               string
	UserID                   string
	Username                 string
	BudgetID                 string // empty means not tied to any budget
	Account                  string
	RepeatTransaction        bool
	RepeatInterval           int
	RepeatFrequency          RepeatFrequency
	RepeatTransactionEndDate *time.Time
	Month                    int // denormalized for reporting
	Year                     int
	CreatedAt                time.Time
	CreatedBy                string
	UpdatedAt                *time.Time
	UpdatedBy                string
}

// NewTransaction creates a new transaction with basic validation. Month and
// year are denormalized from the creation time for report queries.
func NewTransaction(
	id string,
	txType string,
	amount string,
	currency string,
	category string,
	userID string,
	username string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if !isValidTransactionType(txType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", errs.ErrInvalidRequest)
	}

	amountInCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		ID:            id,
		Type:          TransactionType(txType),
		AmountInCents: amountInCents,
		Currency:      currency,
		Category:      category,
		UserID:        userID,
		Username:      username,
		Account:       "Default",
		Month:         int(now.Month()),
		Year:          now.Year(),
		CreatedAt:     now,
		CreatedBy:     username,
	}, nil
}

// GetAmount returns the amount as a two-decimal string
func (t *Transaction) GetAmount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// HasBudget reports whether this transaction counts toward a budget
func (t *Transaction) HasBudget() bool {
	return t.BudgetID != ""
}

// MarkUpdated stamps the update metadata
func (t *Transaction) MarkUpdated(updatedBy string, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	t.UpdatedAt = &now
	t.UpdatedBy = updatedBy
}

// isValidTransactionType validates if the transaction type is allowed
func isValidTransactionType(txType string) bool {
	return txType == string(TypeIncome) || txType == string(TypeExpense)
}
