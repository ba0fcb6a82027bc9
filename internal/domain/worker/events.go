package worker

// Handler names registered with the actor system. Emitters address workers by
// these names; payloads are the event types below.
const (
	HandlerReconcileDelta    = "budget.reconcile.delta"
	HandlerReconcileAbsolute = "budget.reconcile.absolute"
	HandlerEnsureCategory    = "category.ensure"
	HandlerSendPush          = "notification.push"
)

// ReconcileDeltaEvent asks the reconciler to add a transaction's signed
// contribution to a budget's progress value. Emitted on transaction creation.
type ReconcileDeltaEvent struct {
	BudgetID      string
	AmountInCents int64
}

// ReconcileAbsoluteEvent asks the reconciler to replace a budget's progress
// value with a freshly aggregated total. Emitted after transaction updates and
// deletes, where the set of counted transactions may have changed and an
// incremental adjustment would be unsafe.
type ReconcileAbsoluteEvent struct {
	BudgetID     string
	TotalInCents int64
}

// EnsureCategoryEvent asks the category worker to lazily create a category for
// a (creator, title) pair if one is not already visible to the creator.
type EnsureCategoryEvent struct {
	CreatorID string
	Title     string
}
