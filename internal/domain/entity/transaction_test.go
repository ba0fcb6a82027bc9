package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should create a transaction with denormalized month and year", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		txn, err := NewTransaction("tx-1", "Expense", "25.50", "USD", "Food", "user-1", "alice", mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, TypeExpense, txn.Type)
		assert.Equal(t, int64(2550), txn.AmountInCents)
		assert.Equal(t, "Default", txn.Account)
		assert.Equal(t, 3, txn.Month)
		assert.Equal(t, 2025, txn.Year)
		assert.Equal(t, fixedTime, txn.CreatedAt)
		assert.Equal(t, "alice", txn.CreatedBy)
	})

	t.Run("should reject an unknown transaction type", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		txn, err := NewTransaction("tx-1", "Transfer", "25.50", "USD", "Food", "user-1", "alice", mockTimeProvider)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})

	t.Run("should reject an empty category", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		txn, err := NewTransaction("tx-1", "Income", "25.50", "USD", "", "user-1", "alice", mockTimeProvider)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("should reject an invalid amount", func(t *testing.T) {
		mockTimeProvider := new(core.MockTimeProvider)

		txn, err := NewTransaction("tx-1", "Income", "-25.50", "USD", "Salary", "user-1", "alice", mockTimeProvider)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestTransaction_HasBudget(t *testing.T) {
	txn := &Transaction{BudgetID: ""}
	assert.False(t, txn.HasBudget())

	txn.BudgetID = "budget-1"
	assert.True(t, txn.HasBudget())
}

func TestTransaction_MarkUpdated(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)

	txn := &Transaction{ID: "tx-1"}
	txn.MarkUpdated("bob", mockTimeProvider)

	assert.Equal(t, fixedTime, *txn.UpdatedAt)
	assert.Equal(t, "bob", txn.UpdatedBy)
}

func TestTransaction_GetAmount(t *testing.T) {
	txn := &Transaction{AmountInCents: 2550}
	assert.Equal(t, "25.50", txn.GetAmount())
}
