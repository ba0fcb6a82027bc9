package persistence

import (
	"context"
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// TransactionFilter narrows transaction listing queries
type TransactionFilter struct {
	Type     string
	Currency string
	Category string
	Query    string // matches category or description
	Page     int
	PageSize int
}

// TransactionRepository defines operations for managing transactions
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, txn *entity.Transaction) error

	// Delete removes the transaction and returns the deleted record so the
	// caller can emit reconciliation events for its budget
	Delete(ctx context.Context, id string) (*entity.Transaction, error)

	Filter(ctx context.Context, filter TransactionFilter, userID string) ([]entity.Transaction, int64, error)
	ListForBudget(ctx context.Context, budgetID, userID string) ([]entity.Transaction, error)

	// SumAmountForBudget returns the aggregate amount, in cents, of all
	// transactions currently tied to the budget for the given user
	SumAmountForBudget(ctx context.Context, budgetID, userID string) (int64, error)

	// SumAmountByType returns the aggregate amount, in cents, of the user's
	// transactions of the given type created within [from, to]
	SumAmountByType(ctx context.Context, userID string, txType entity.TransactionType, from, to time.Time) (int64, error)
}
