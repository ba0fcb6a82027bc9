package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/core"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/messaging"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/persistence"
)

// newTestLogger returns a mock logger that tolerates any log call. Tests that
// care about a specific message add their own expectations on top.
func newTestLogger() *core.MockLogger {
	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestBudgetReconciler_HandleDelta(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("should apply the delta without notifying below the threshold", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// 60% spent against an 80% alert threshold
		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Groceries",
			AmountInCents:          50000,
			ProgressValueInCents:   30000,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-1",
		}
		mockBudgetRepo.On("IncrementProgress", ctx, "budget-1", int64(2550), fixedTime).Return(budget, nil)

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleDelta(ctx, ReconcileDeltaEvent{BudgetID: "budget-1", AmountInCents: 2550})

		mockBudgetRepo.AssertExpectations(t)
		mockUserRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should emit a progress alert when the spend crosses the threshold", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// 90% spent against an 80% alert threshold, ceiling not passed
		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Groceries",
			AmountInCents:          50000,
			ProgressValueInCents:   45000,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-1",
		}
		mockBudgetRepo.On("IncrementProgress", ctx, "budget-1", int64(5000), fixedTime).Return(budget, nil)
		mockUserRepo.On("GetByID", ctx, "user-1").Return(&entity.User{ID: "user-1", FcmToken: "device-1"}, nil)

		expected := entity.PushNotification{
			Token: "device-1",
			Title: "Budget Progress Alert",
			Body:  fmt.Sprintf("Heads up! You're nearing your budget limit for %s. You've spent %s out of %s. Keep an eye on your spending!", "Groceries", "450.00", "500.00"),
		}
		mockDispatcher.On("Emit", HandlerSendPush, expected).Return()

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleDelta(ctx, ReconcileDeltaEvent{BudgetID: "budget-1", AmountInCents: 5000})

		mockBudgetRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
		mockDispatcher.AssertExpectations(t)
	})

	t.Run("should prefer the exceeded alert once the ceiling is passed", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// 110% spent: the threshold is also crossed but only one
		// notification may fire, and the exceeded alert wins
		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Groceries",
			AmountInCents:          50000,
			ProgressValueInCents:   55000,
			LimitExceeded:          true,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-1",
		}
		mockBudgetRepo.On("IncrementProgress", ctx, "budget-1", int64(10000), fixedTime).Return(budget, nil)
		mockUserRepo.On("GetByID", ctx, "user-1").Return(&entity.User{ID: "user-1", FcmToken: "device-1"}, nil)

		expected := entity.PushNotification{
			Token: "device-1",
			Title: "Budget Limit Exceeded",
			Body:  fmt.Sprintf("Overspending Alert! You've exceeded your budget for %s by %s. Consider reviewing your expenses.", "Groceries", "50.00"),
		}
		mockDispatcher.On("Emit", HandlerSendPush, expected).Return()

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleDelta(ctx, ReconcileDeltaEvent{BudgetID: "budget-1", AmountInCents: 10000})

		mockDispatcher.AssertExpectations(t)
		mockDispatcher.AssertNumberOfCalls(t, "Emit", 1)
	})

	t.Run("should drop the event silently when the budget is missing", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockBudgetRepo.On("IncrementProgress", ctx, "ghost", int64(2550), fixedTime).Return(nil, errs.ErrBudgetNotFound)

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleDelta(ctx, ReconcileDeltaEvent{BudgetID: "ghost", AmountInCents: 2550})

		mockBudgetRepo.AssertExpectations(t)
		mockUserRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should swallow store failures", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		mockLogger := newTestLogger()

		mockBudgetRepo.On("IncrementProgress", ctx, "budget-1", int64(2550), fixedTime).Return(nil, errors.New("connection refused"))

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, mockLogger)

		reconciler.HandleDelta(ctx, ReconcileDeltaEvent{BudgetID: "budget-1", AmountInCents: 2550})

		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should ignore an unexpected payload type", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleDelta(ctx, "not-an-event")

		mockBudgetRepo.AssertNotCalled(t, "IncrementProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBudgetReconciler_HandleAbsolute(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("should replace the progress with the aggregated total", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Groceries",
			AmountInCents:          50000,
			ProgressValueInCents:   20000,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-1",
		}
		mockBudgetRepo.On("SetProgress", ctx, "budget-1", int64(20000), fixedTime).Return(budget, nil)

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleAbsolute(ctx, ReconcileAbsoluteEvent{BudgetID: "budget-1", TotalInCents: 20000})

		mockBudgetRepo.AssertExpectations(t)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should treat any spend against a zero ceiling as exceeded", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Impulse buys",
			AmountInCents:          0,
			ProgressValueInCents:   100,
			LimitExceeded:          true,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-1",
		}
		mockBudgetRepo.On("SetProgress", ctx, "budget-1", int64(100), fixedTime).Return(budget, nil)
		mockUserRepo.On("GetByID", ctx, "user-1").Return(&entity.User{ID: "user-1", FcmToken: "device-1"}, nil)

		expected := entity.PushNotification{
			Token: "device-1",
			Title: "Budget Limit Exceeded",
			Body:  fmt.Sprintf("Overspending Alert! You've exceeded your budget for %s by %s. Consider reviewing your expenses.", "Impulse buys", "1.00"),
		}
		mockDispatcher.On("Emit", HandlerSendPush, expected).Return()

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleAbsolute(ctx, ReconcileAbsoluteEvent{BudgetID: "budget-1", TotalInCents: 100})

		mockDispatcher.AssertExpectations(t)
		mockDispatcher.AssertNumberOfCalls(t, "Emit", 1)
	})

	t.Run("should skip the notification when the owner is missing", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Groceries",
			AmountInCents:          50000,
			ProgressValueInCents:   55000,
			LimitExceeded:          true,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-gone",
		}
		mockBudgetRepo.On("SetProgress", ctx, "budget-1", int64(55000), fixedTime).Return(budget, nil)
		mockUserRepo.On("GetByID", ctx, "user-gone").Return(nil, errs.ErrUserNotFound)

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleAbsolute(ctx, ReconcileAbsoluteEvent{BudgetID: "budget-1", TotalInCents: 55000})

		mockUserRepo.AssertExpectations(t)
		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("should skip the notification when the owner has no push token", func(t *testing.T) {
		mockBudgetRepo := new(persistence.MockBudgetRepository)
		mockUserRepo := new(persistence.MockUserRepository)
		mockDispatcher := new(messaging.MockDispatcher)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		budget := &entity.Budget{
			ID:                     "budget-1",
			Title:                  "Groceries",
			AmountInCents:          50000,
			ProgressValueInCents:   55000,
			LimitExceeded:          true,
			ReceiveAlertPercentage: 0.8,
			CreatedBy:              "user-1",
		}
		mockBudgetRepo.On("SetProgress", ctx, "budget-1", int64(55000), fixedTime).Return(budget, nil)
		mockUserRepo.On("GetByID", ctx, "user-1").Return(&entity.User{ID: "user-1"}, nil)

		reconciler := NewBudgetReconciler(mockBudgetRepo, mockUserRepo, mockDispatcher, mockTimeProvider, newTestLogger())

		reconciler.HandleAbsolute(ctx, ReconcileAbsoluteEvent{BudgetID: "budget-1", TotalInCents: 55000})

		mockDispatcher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}
