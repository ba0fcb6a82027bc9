package worker

import (
	"context"
	"fmt"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/messaging"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// Notification copy for budget alerts
const (
	progressAlertTitle = "Budget Progress Alert"
	progressAlertBody  = "Heads up! You're nearing your budget limit for %s. You've spent %s out of %s. Keep an eye on your spending!"

	limitExceededTitle = "Budget Limit Exceeded"
	limitExceededBody  = "Overspending Alert! You've exceeded your budget for %s by %s. Consider reviewing your expenses."
)

// BudgetReconciler keeps a budget's progress value and exceeded flag
// consistent with its transactions and decides when a push notification must
// fire. It consumes transaction-lifecycle events emitted by the transaction
// service.
//
// Both handlers run out-of-band from the request that triggered them: every
// failure here is logged and swallowed, because the originating transaction
// write has already succeeded and must not be rolled back or flagged.
type BudgetReconciler struct {
	budgets      persistence.BudgetRepository
	users        persistence.UserRepository
	dispatcher   messaging.Dispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBudgetReconciler creates a new budget reconciliation worker
func NewBudgetReconciler(
	budgets persistence.BudgetRepository,
	users persistence.UserRepository,
	dispatcher messaging.Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BudgetReconciler {
	return &BudgetReconciler{
		budgets:      budgets,
		users:        users,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// HandleDelta applies a transaction's contribution to the budget's progress.
// A missing budget is tolerated silently: the event is simply dropped.
func (r *BudgetReconciler) HandleDelta(ctx context.Context, payload any) {
	event, ok := payload.(ReconcileDeltaEvent)
	if !ok {
		r.logger.Error("Unexpected payload type for delta reconciliation", map[string]any{
			"payload": fmt.Sprintf("%T", payload),
		})
		return
	}

	r.logger.Debug("Received budget delta reconciliation event", map[string]any{
		"budget_id": event.BudgetID,
		"amount":    entity.AmountInCentsToString(event.AmountInCents),
	})

	budget, err := r.budgets.IncrementProgress(ctx, event.BudgetID, event.AmountInCents, r.timeProvider.Now())
	if err != nil {
		r.logFailure("apply-delta", event.BudgetID, err)
		return
	}

	r.evaluateNotificationPolicy(ctx, budget)
}

// HandleAbsolute replaces the budget's progress with a freshly aggregated
// total. Used after updates and deletes, where incremental adjustment is
// unsafe because the set of counted transactions changed.
func (r *BudgetReconciler) HandleAbsolute(ctx context.Context, payload any) {
	event, ok := payload.(ReconcileAbsoluteEvent)
	if !ok {
		r.logger.Error("Unexpected payload type for absolute reconciliation", map[string]any{
			"payload": fmt.Sprintf("%T", payload),
		})
		return
	}

	r.logger.Debug("Received budget absolute reconciliation event", map[string]any{
		"budget_id": event.BudgetID,
		"total":     entity.AmountInCentsToString(event.TotalInCents),
	})

	budget, err := r.budgets.SetProgress(ctx, event.BudgetID, event.TotalInCents, r.timeProvider.Now())
	if err != nil {
		r.logFailure("apply-absolute", event.BudgetID, err)
		return
	}

	r.evaluateNotificationPolicy(ctx, budget)
}

// evaluateNotificationPolicy produces at most one notification per
// reconciliation: a progress alert when the spend crosses the configured
// threshold, or a limit-exceeded alert once the ceiling is passed. The
// limit-exceeded branch takes precedence because the progress branch requires
// the flag to be unset.
//
// A zero-amount budget reports +Inf progress for any spend, but any positive
// spend also sets LimitExceeded, so the exceeded branch fires.
func (r *BudgetReconciler) evaluateNotificationPolicy(ctx context.Context, budget *entity.Budget) {
	var notification *entity.PushNotification

	progressPercent := budget.ProgressPercent()
	threshold := budget.AlertThresholdPercent()

	if progressPercent >= threshold && !budget.LimitExceeded {
		notification = &entity.PushNotification{
			Title: progressAlertTitle,
			Body: fmt.Sprintf(progressAlertBody,
				budget.Title, budget.GetProgressValue(), budget.GetAmount()),
		}
	}

	if budget.LimitExceeded {
		notification = &entity.PushNotification{
			Title: limitExceededTitle,
			Body: fmt.Sprintf(limitExceededBody,
				budget.Title, entity.AmountInCentsToString(budget.OverspendInCents())),
		}
	}

	if notification == nil {
		return
	}

	// Resolve the recipient. A missing owner or an owner without a registered
	// device token drops the notification silently.
	owner, err := r.users.GetByID(ctx, budget.CreatedBy)
	if err != nil {
		if errs.IsNotFoundError(err) {
			r.logger.Debug("Budget owner not found, skipping notification", map[string]any{
				"budget_id": budget.ID,
				"user_id":   budget.CreatedBy,
			})
			return
		}
		r.logFailure("resolve-recipient", budget.ID, err)
		return
	}
	if !owner.HasPushToken() {
		r.logger.Debug("Budget owner has no push token, skipping notification", map[string]any{
			"budget_id": budget.ID,
			"user_id":   owner.ID,
		})
		return
	}

	notification.Token = owner.FcmToken
	r.logger.Debug("Dispatching budget notification", map[string]any{
		"budget_id": budget.ID,
		"title":     notification.Title,
	})
	r.dispatcher.Emit(HandlerSendPush, *notification)
}

// logFailure records a swallowed reconciliation failure. A missing budget is
// an expected no-op and only logged at debug level.
func (r *BudgetReconciler) logFailure(operation, budgetID string, err error) {
	if errs.IsBudgetNotFoundError(err) {
		r.logger.Debug("Budget not found, dropping reconciliation event", map[string]any{
			"budget_id": budgetID,
			"operation": operation,
		})
		return
	}

	reconErr := &errs.ReconciliationError{BudgetID: budgetID, Operation: operation, Err: err}
	r.logger.Error("Budget reconciliation failed", reconErr.LogFields())
}
