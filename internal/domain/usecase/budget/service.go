package budget

import (
	"context"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// CreateRequest carries the fields for a new budget
type CreateRequest struct {
	Title                  string
	Description            string
	Amount                 string
	Category               string
	CategoryID             string
	ReceiveAlert           bool
	ReceiveAlertPercentage float64
}

// UpdateRequest carries the user-editable fields of a budget. ProgressValue
// and LimitExceeded are derived and cannot be set through an update.
type UpdateRequest struct {
	Title                  string
	Description            string
	Amount                 string
	Category               string
	CategoryID             string
	ReceiveAlert           bool
	ReceiveAlertPercentage float64
	Status                 string
}

// Service provides budget CRUD for the HTTP surface. Progress mutation is not
// exposed here; it belongs to the reconciliation worker alone.
type Service struct {
	budgets      persistence.BudgetRepository
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new budget service
func NewService(
	budgets persistence.BudgetRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		budgets:      budgets,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create creates a budget owned by the acting user
func (s *Service) Create(ctx context.Context, req CreateRequest, actor *authport.Claims) (*entity.Budget, error) {
	budget, err := entity.NewBudget(
		s.idGenerator.NewID(),
		req.Title,
		req.Description,
		req.Amount,
		req.Category,
		req.CategoryID,
		req.ReceiveAlert,
		req.ReceiveAlertPercentage,
		actor.UserID,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.budgets.Create(ctx, budget); err != nil {
		s.logger.Error("Failed to create budget", map[string]any{
			"user_id": actor.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Budget created", map[string]any{
		"budget_id": budget.ID,
		"user_id":   budget.CreatedBy,
		"amount":    budget.GetAmount(),
	})
	return budget, nil
}

// GetByID returns a single budget
func (s *Service) GetByID(ctx context.Context, id string) (*entity.Budget, error) {
	return s.budgets.GetByID(ctx, id)
}

// Update applies user-editable fields onto an existing budget. Changing the
// target amount re-derives LimitExceeded against the current progress value.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*entity.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		budget.Title = req.Title
	}
	budget.Description = req.Description
	if req.Amount != "" {
		amountInCents, err := entity.ValidateAndConvertAmount(req.Amount)
		if err != nil {
			return nil, err
		}
		budget.AmountInCents = amountInCents
	}
	if req.Category != "" {
		budget.Category = req.Category
		budget.CategoryID = req.CategoryID
	}
	budget.ReceiveAlert = req.ReceiveAlert
	budget.ReceiveAlertPercentage = req.ReceiveAlertPercentage
	if req.Status != "" {
		budget.Status = entity.BudgetStatus(req.Status)
	}
	budget.Recalculate(s.timeProvider)

	if err := s.budgets.Update(ctx, budget); err != nil {
		s.logger.Error("Failed to update budget", map[string]any{
			"budget_id": id,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Budget updated", map[string]any{
		"budget_id": budget.ID,
		"amount":    budget.GetAmount(),
	})
	return budget, nil
}

// Delete removes a budget owned by the acting user
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.budgets.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Budget deleted", map[string]any{
		"budget_id": id,
	})
	return nil
}

// List returns a filtered page of the acting user's budgets along with the
// total match count
func (s *Service) List(ctx context.Context, filter persistence.BudgetFilter, actor *authport.Claims) ([]entity.Budget, int64, error) {
	return s.budgets.Filter(ctx, filter, actor.UserID)
}

// ListOptions returns the acting user's budgets as dropdown options
func (s *Service) ListOptions(ctx context.Context, actor *authport.Claims) ([]persistence.BudgetOption, error) {
	return s.budgets.ListOptions(ctx, actor.UserID)
}
