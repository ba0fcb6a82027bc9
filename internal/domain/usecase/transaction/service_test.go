package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/worker"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/core"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/messaging"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/persistence"
)

func newTestLogger() *core.MockLogger {
	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestService_Create(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	ctx := context.Background()
	actor := &authport.Claims{UserID: "user-1", Email: "alice@example.com", Username: "alice"}

	t.Run("should persist and emit reconciliation and category events", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockIDGenerator.On("NewID").Return("tx-1")
		mockTimeProvider.On("Now").Return(fixedTime)

		mockTxnRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockDispatcher.On("Emit", worker.HandlerReconcileDelta, worker.ReconcileDeltaEvent{
			BudgetID:      "budget-1",
			AmountInCents: 2550,
		}).Return()
		mockDispatcher.On("Emit", worker.HandlerEnsureCategory, worker.EnsureCategoryEvent{
			CreatorID: "user-1",
			Title:     "Food",
		}).Return()

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Create(ctx, CreateRequest{
			Type:     "Expense",
			Amount:   "25.50",
			Currency: "USD",
			Category: "Food",
			BudgetID: "budget-1",
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, "tx-1", txn.ID)
		assert.Equal(t, int64(2550), txn.AmountInCents)
		assert.Equal(t, "budget-1", txn.BudgetID)
		assert.Equal(t, "user-1", txn.UserID)

		mockTxnRepo.AssertExpectations(t)
		mockDispatcher.AssertExpectations(t)
	})

	t.Run("should skip the reconciliation event for a budgetless transaction", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockIDGenerator.On("NewID").Return("tx-1")
		mockTimeProvider.On("Now").Return(fixedTime)

		mockTxnRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockDispatcher.On("Emit", worker.HandlerEnsureCategory, worker.EnsureCategoryEvent{
			CreatorID: "user-1",
			Title:     "Salary",
		}).Return()

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Create(ctx, CreateRequest{
			Type:     "Income",
			Amount:   "1000",
			Currency: "USD",
			Category: "Salary",
		}, actor)

		assert.NoError(t, err)
		assert.False(t, txn.HasBudget())

		mockDispatcher.AssertNumberOfCalls(t, "Emit", 1)
		mockDispatcher.AssertNotCalled(t, "Emit", worker.HandlerReconcileDelta, mock.Anything)
	})

	t.Run("should not emit anything when the store write fails", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockIDGenerator.On("NewID").Return("tx-1")
		mockTimeProvider.On("Now").Return(fixedTime)

		dbError := errors.New("connection refused")
		mockTxnRepo.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(dbError)

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Create(ctx, CreateRequest{
			Type:     "Expense",
			Amount:   "25.50",
			Currency: "USD",
			Category: "Food",
			BudgetID: "budget-1",
		}, actor)

		assert.Nil(t, txn)
		assert.Equal(t, dbError, err)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should reject an invalid transaction before touching the store", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockIDGenerator.On("NewID").Return("tx-1")

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Create(ctx, CreateRequest{
			Type:     "Transfer",
			Amount:   "25.50",
			Currency: "USD",
			Category: "Food",
		}, actor)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
		mockTxnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	ctx := context.Background()
	actor := &authport.Claims{UserID: "user-1", Username: "alice"}

	existing := func() *entity.Transaction {
		return &entity.Transaction{
			ID:            "tx-1",
			Type:          entity.TypeExpense,
			AmountInCents: 2550,
			Currency:      "USD",
			Category:      "Food",
			UserID:        "user-1",
			BudgetID:      "budget-1",
		}
	}

	t.Run("should persist and emit an absolute reconciliation", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockTxnRepo.On("GetByID", ctx, "tx-1").Return(existing(), nil)
		mockTxnRepo.On("Update", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockTxnRepo.On("SumAmountForBudget", ctx, "budget-1", "user-1").Return(int64(7500), nil)
		mockDispatcher.On("Emit", worker.HandlerReconcileAbsolute, worker.ReconcileAbsoluteEvent{
			BudgetID:     "budget-1",
			TotalInCents: 7500,
		}).Return()
		mockDispatcher.On("Emit", worker.HandlerEnsureCategory, worker.EnsureCategoryEvent{
			CreatorID: "user-1",
			Title:     "Food",
		}).Return()

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Update(ctx, "tx-1", UpdateRequest{
			Amount:   "50.00",
			BudgetID: "budget-1",
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, int64(5000), txn.AmountInCents)
		assert.Equal(t, "alice", txn.UpdatedBy)
		assert.Equal(t, fixedTime, *txn.UpdatedAt)

		mockTxnRepo.AssertExpectations(t)
		mockDispatcher.AssertExpectations(t)
	})

	t.Run("should skip reconciliation when the budget link is removed", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockTxnRepo.On("GetByID", ctx, "tx-1").Return(existing(), nil)
		mockTxnRepo.On("Update", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockDispatcher.On("Emit", worker.HandlerEnsureCategory, mock.Anything).Return()

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Update(ctx, "tx-1", UpdateRequest{BudgetID: ""}, actor)

		assert.NoError(t, err)
		assert.False(t, txn.HasBudget())
		mockTxnRepo.AssertNotCalled(t, "SumAmountForBudget", mock.Anything, mock.Anything, mock.Anything)
		mockDispatcher.AssertNotCalled(t, "Emit", worker.HandlerReconcileAbsolute, mock.Anything)
	})

	t.Run("should drop the reconciliation event when aggregation fails", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockTxnRepo.On("GetByID", ctx, "tx-1").Return(existing(), nil)
		mockTxnRepo.On("Update", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockTxnRepo.On("SumAmountForBudget", ctx, "budget-1", "user-1").Return(int64(0), errors.New("connection refused"))
		mockDispatcher.On("Emit", worker.HandlerEnsureCategory, mock.Anything).Return()

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		// The update itself already succeeded, so the caller still gets a result
		txn, err := service.Update(ctx, "tx-1", UpdateRequest{BudgetID: "budget-1"}, actor)

		assert.NoError(t, err)
		assert.NotNil(t, txn)
		mockDispatcher.AssertNotCalled(t, "Emit", worker.HandlerReconcileAbsolute, mock.Anything)
	})

	t.Run("should return an error for a missing transaction", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		mockTxnRepo.On("GetByID", ctx, "ghost").Return(nil, errs.ErrTransactionNotFound)

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		txn, err := service.Update(ctx, "ghost", UpdateRequest{}, actor)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("should emit an absolute reconciliation for the deleted record's budget", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		deleted := &entity.Transaction{ID: "tx-1", UserID: "user-1", BudgetID: "budget-1"}
		mockTxnRepo.On("Delete", ctx, "tx-1").Return(deleted, nil)
		mockTxnRepo.On("SumAmountForBudget", ctx, "budget-1", "user-1").Return(int64(5000), nil)
		mockDispatcher.On("Emit", worker.HandlerReconcileAbsolute, worker.ReconcileAbsoluteEvent{
			BudgetID:     "budget-1",
			TotalInCents: 5000,
		}).Return()

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		err := service.Delete(ctx, "tx-1")

		assert.NoError(t, err)
		mockTxnRepo.AssertExpectations(t)
		mockDispatcher.AssertExpectations(t)
	})

	t.Run("should not emit anything for a budgetless transaction", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		deleted := &entity.Transaction{ID: "tx-1", UserID: "user-1"}
		mockTxnRepo.On("Delete", ctx, "tx-1").Return(deleted, nil)

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		err := service.Delete(ctx, "tx-1")

		assert.NoError(t, err)
		mockTxnRepo.AssertNotCalled(t, "SumAmountForBudget", mock.Anything, mock.Anything, mock.Anything)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should return an error for a missing transaction", func(t *testing.T) {
		mockTxnRepo := new(persistence.MockTransactionRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		mockTxnRepo.On("Delete", ctx, "ghost").Return(nil, errs.ErrTransactionNotFound)

		service := NewService(mockTxnRepo, mockDispatcher, mockIDGenerator, mockTimeProvider, newTestLogger())

		err := service.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}
