package persistence

import (
	"context"
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// BudgetFilter narrows budget listing queries
type BudgetFilter struct {
	Status   string
	Query    string // matches title, description or category
	Page     int
	PageSize int
}

// BudgetOption is the id/title projection used for dropdown lists
type BudgetOption struct {
	ID          string
	Title       string
	Description string
}

// BudgetRepository defines operations for managing budgets.
//
// IncrementProgress and SetProgress are the narrow reconciliation operations:
// they mutate only the derived progress fields, atomically at the store, and
// return the resulting budget. Both return ErrBudgetNotFound when the budget
// is absent; callers on the asynchronous path treat that as a silent no-op.
type BudgetRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Budget, error)
	Create(ctx context.Context, budget *entity.Budget) error
	Update(ctx context.Context, budget *entity.Budget) error
	Delete(ctx context.Context, id string) error
	Filter(ctx context.Context, filter BudgetFilter, userID string) ([]entity.Budget, int64, error)
	ListOptions(ctx context.Context, userID string) ([]BudgetOption, error)

	// IncrementProgress atomically adds deltaInCents to the budget's progress
	// value, re-derives the exceeded flag and stamps updatedAt
	IncrementProgress(ctx context.Context, id string, deltaInCents int64, now time.Time) (*entity.Budget, error)

	// SetProgress atomically replaces the budget's progress value with a
	// freshly aggregated total, re-derives the exceeded flag and stamps updatedAt
	SetProgress(ctx context.Context, id string, totalInCents int64, now time.Time) (*entity.Budget, error)
}
