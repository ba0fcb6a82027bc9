package transaction

import (
	"context"
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/messaging"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/worker"
)

// CreateRequest carries the fields for a new transaction
type CreateRequest struct {
	Type                     string
	Amount                   string
	Currency                 string
	Category                 string
	Description              string
	InvoiceURL               string
	BudgetID                 string
	RepeatTransaction        bool
	RepeatInterval           int
	RepeatFrequency          string
	RepeatTransactionEndDate *time.Time
}

// UpdateRequest carries the mutable fields of an existing transaction
type UpdateRequest struct {
	Amount                   string
	Category                 string
	Description              string
	InvoiceURL               string
	BudgetID                 string
	RepeatTransaction        bool
	RepeatInterval           int
	RepeatFrequency          string
	RepeatTransactionEndDate *time.Time
}

// Service orchestrates transaction writes. The store write is synchronous and
// decides the caller's response; budget reconciliation and category creation
// are emitted as fire-and-forget events afterwards and never affect the
// response already owed to the caller.
type Service struct {
	transactions persistence.TransactionRepository
	dispatcher   messaging.Dispatcher
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transaction service
func NewService(
	transactions persistence.TransactionRepository,
	dispatcher messaging.Dispatcher,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactions: transactions,
		dispatcher:   dispatcher,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create persists a new transaction for the acting user, then emits the
// asynchronous side-effect events. Income and Expense both contribute their
// full amount to budget progress; the amount is not signed by type.
func (s *Service) Create(ctx context.Context, req CreateRequest, actor *authport.Claims) (*entity.Transaction, error) {
	txn, err := entity.NewTransaction(
		s.idGenerator.NewID(),
		req.Type,
		req.Amount,
		req.Currency,
		req.Category,
		actor.UserID,
		actor.Username,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	txn.Description = req.Description
	txn.InvoiceURL = req.InvoiceURL
	txn.BudgetID = req.BudgetID
	txn.RepeatTransaction = req.RepeatTransaction
	txn.RepeatInterval = req.RepeatInterval
	txn.RepeatFrequency = entity.RepeatFrequency(req.RepeatFrequency)
	txn.RepeatTransactionEndDate = req.RepeatTransactionEndDate

	if err := s.transactions.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"user_id": actor.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"amount":         txn.GetAmount(),
		"budget_id":      txn.BudgetID,
	})

	if txn.HasBudget() {
		s.dispatcher.Emit(worker.HandlerReconcileDelta, worker.ReconcileDeltaEvent{
			BudgetID:      txn.BudgetID,
			AmountInCents: txn.AmountInCents,
		})
	}
	s.dispatcher.Emit(worker.HandlerEnsureCategory, worker.EnsureCategoryEvent{
		CreatorID: actor.UserID,
		Title:     txn.Category,
	})

	return txn, nil
}

// Update applies the mutable fields onto an existing transaction and persists
// it. Because the update may change which transactions count toward the
// budget, reconciliation uses a freshly aggregated absolute total rather than
// an incremental delta.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, actor *authport.Claims) (*entity.Transaction, error) {
	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != "" {
		amountInCents, err := entity.ValidateAndConvertAmount(req.Amount)
		if err != nil {
			return nil, err
		}
		txn.AmountInCents = amountInCents
	}
	if req.Category != "" {
		txn.Category = req.Category
	}
	txn.Description = req.Description
	if req.InvoiceURL != "" {
		txn.InvoiceURL = req.InvoiceURL
	}
	txn.BudgetID = req.BudgetID
	txn.RepeatTransaction = req.RepeatTransaction
	txn.RepeatInterval = req.RepeatInterval
	txn.RepeatFrequency = entity.RepeatFrequency(req.RepeatFrequency)
	txn.RepeatTransactionEndDate = req.RepeatTransactionEndDate
	txn.MarkUpdated(actor.Username, s.timeProvider)

	if err := s.transactions.Update(ctx, txn); err != nil {
		s.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": id,
			"user_id":        actor.UserID,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        txn.UserID,
		"budget_id":      txn.BudgetID,
	})

	s.emitAbsoluteReconciliation(ctx, txn.BudgetID, txn.UserID)
	s.dispatcher.Emit(worker.HandlerEnsureCategory, worker.EnsureCategoryEvent{
		CreatorID: actor.UserID,
		Title:     txn.Category,
	})

	return txn, nil
}

// Delete removes a transaction. If the deleted record was tied to a budget,
// the remaining transactions are re-aggregated and an absolute reconciliation
// event is emitted.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.transactions.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": deleted.ID,
		"user_id":        deleted.UserID,
		"budget_id":      deleted.BudgetID,
	})

	s.emitAbsoluteReconciliation(ctx, deleted.BudgetID, deleted.UserID)
	return nil
}

// GetByID returns a single transaction
func (s *Service) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

// List returns a filtered page of the acting user's transactions along with
// the total match count
func (s *Service) List(ctx context.Context, filter persistence.TransactionFilter, actor *authport.Claims) ([]entity.Transaction, int64, error) {
	return s.transactions.Filter(ctx, filter, actor.UserID)
}

// ListForBudget returns the acting user's transactions tied to a budget
func (s *Service) ListForBudget(ctx context.Context, budgetID string, actor *authport.Claims) ([]entity.Transaction, error) {
	return s.transactions.ListForBudget(ctx, budgetID, actor.UserID)
}

// emitAbsoluteReconciliation aggregates the budget's current total and emits
// an apply-absolute event. The aggregation failing only loses the event; the
// already-committed write stands, and the next mutation recomputes again.
func (s *Service) emitAbsoluteReconciliation(ctx context.Context, budgetID, userID string) {
	if budgetID == "" {
		return
	}

	total, err := s.transactions.SumAmountForBudget(ctx, budgetID, userID)
	if err != nil {
		s.logger.Error("Failed to aggregate budget total, skipping reconciliation event", map[string]any{
			"budget_id": budgetID,
			"user_id":   userID,
			"error":     err.Error(),
		})
		return
	}

	s.dispatcher.Emit(worker.HandlerReconcileAbsolute, worker.ReconcileAbsoluteEvent{
		BudgetID:     budgetID,
		TotalInCents: total,
	})
}
