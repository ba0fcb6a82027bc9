package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/model"
)

// BudgetRepository implements persistence.BudgetRepository using GORM
type BudgetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a budget model to an entity
func (r *BudgetRepository) modelToEntity(budgetModel *model.Budget) *entity.Budget {
	return &entity.Budget{
		ID:                     budgetModel.ID,
		Title:                  budgetModel.Title,
		Description:            budgetModel.Description,
		AmountInCents:          budgetModel.AmountInCents,
		Category:               budgetModel.Category,
		CategoryID:             budgetModel.CategoryID,
		ReceiveAlert:           budgetModel.ReceiveAlert,
		ReceiveAlertPercentage: budgetModel.ReceiveAlertPercentage,
		ProgressValueInCents:   budgetModel.ProgressValueInCents,
		LimitExceeded:          budgetModel.LimitExceeded,
		Status:                 entity.BudgetStatus(budgetModel.Status),
		CreatedBy:              budgetModel.CreatedBy,
		CreatedAt:              budgetModel.CreatedAt,
		UpdatedAt:              budgetModel.UpdatedAt,
	}
}

// entityToModel converts a budget entity to a model
func (r *BudgetRepository) entityToModel(budget *entity.Budget) *model.Budget {
	return &model.Budget{
		ID:                     budget.ID,
		Title:                  budget.Title,
		Description:            budget.Description,
		AmountInCents:          budget.AmountInCents,
		Category:               budget.Category,
		CategoryID:             budget.CategoryID,
		ReceiveAlert:           budget.ReceiveAlert,
		ReceiveAlertPercentage: budget.ReceiveAlertPercentage,
		ProgressValueInCents:   budget.ProgressValueInCents,
		LimitExceeded:          budget.LimitExceeded,
		Status:                 string(budget.Status),
		CreatedBy:              budget.CreatedBy,
		CreatedAt:              budget.CreatedAt,
		UpdatedAt:              budget.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BudgetRepository) handleDatabaseError(operation string, err error, budgetID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrBudgetNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"budget_id": budgetID,
		"error":     err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByID retrieves a budget by ID
func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*entity.Budget, error) {
	var budgetModel model.Budget
	result := r.db.WithContext(ctx).First(&budgetModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting budget", result.Error, id)
	}
	return r.modelToEntity(&budgetModel), nil
}

// Create creates a new budget
func (r *BudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).Create(r.entityToModel(budget))
	if result.Error != nil {
		return r.handleDatabaseError("creating budget", result.Error, budget.ID)
	}
	return nil
}

// Update replaces the user-editable fields of a budget
func (r *BudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"title":                    budget.Title,
			"description":              budget.Description,
			"amount_in_cents":          budget.AmountInCents,
			"category":                 budget.Category,
			"category_id":              budget.CategoryID,
			"receive_alert":            budget.ReceiveAlert,
			"receive_alert_percentage": budget.ReceiveAlertPercentage,
			"limit_exceeded":           budget.LimitExceeded,
			"status":                   string(budget.Status),
			"updated_at":               budget.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating budget", result.Error, budget.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget
func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Budget{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting budget", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// Filter returns a filtered page of a user's budgets with the total match count
func (r *BudgetRepository) Filter(ctx context.Context, filter persistence.BudgetFilter, userID string) ([]entity.Budget, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Budget{}).Where("created_by = ?", userID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting budgets", err, "")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var budgetModels []model.Budget
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&budgetModels).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing budgets", err, "")
	}

	budgets := make([]entity.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		budgets = append(budgets, *r.modelToEntity(&budgetModels[i]))
	}
	return budgets, total, nil
}

// ListOptions returns a user's budgets as dropdown options
func (r *BudgetRepository) ListOptions(ctx context.Context, userID string) ([]persistence.BudgetOption, error) {
	var budgetModels []model.Budget
	err := r.db.WithContext(ctx).
		Select("id", "title", "description").
		Where("created_by = ?", userID).
		Order("title ASC").
		Find(&budgetModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing budget options", err, "")
	}

	options := make([]persistence.BudgetOption, 0, len(budgetModels))
	for _, m := range budgetModels {
		options = append(options, persistence.BudgetOption{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}
	return options, nil
}

// IncrementProgress atomically adds deltaInCents to the budget's progress value
// under a row lock, re-derives the exceeded flag and returns the result
func (r *BudgetRepository) IncrementProgress(ctx context.Context, id string, deltaInCents int64, now time.Time) (*entity.Budget, error) {
	return r.mutateProgress(ctx, id, now, func(current int64) int64 {
		return current + deltaInCents
	})
}

// SetProgress atomically replaces the budget's progress value with a freshly
// aggregated total under a row lock and returns the result
func (r *BudgetRepository) SetProgress(ctx context.Context, id string, totalInCents int64, now time.Time) (*entity.Budget, error) {
	return r.mutateProgress(ctx, id, now, func(int64) int64 {
		return totalInCents
	})
}

// mutateProgress locks the budget row, applies the progress mutation and
// persists the derived fields in one database transaction. Concurrent
// reconciliation events for the same budget serialize on the row lock.
func (r *BudgetRepository) mutateProgress(ctx context.Context, id string, now time.Time, apply func(current int64) int64) (*entity.Budget, error) {
	var budget *entity.Budget

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budgetModel model.Budget
		result := tx.Set("gorm:query_option", "FOR UPDATE").First(&budgetModel, "id = ?", id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrBudgetNotFound
			}
			return result.Error
		}

		budgetModel.ProgressValueInCents = apply(budgetModel.ProgressValueInCents)
		budgetModel.LimitExceeded = budgetModel.ProgressValueInCents > budgetModel.AmountInCents
		budgetModel.UpdatedAt = &now

		result = tx.Model(&budgetModel).Updates(map[string]interface{}{
			"progress_value_in_cents": budgetModel.ProgressValueInCents,
			"limit_exceeded":          budgetModel.LimitExceeded,
			"updated_at":              budgetModel.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}

		budget = r.modelToEntity(&budgetModel)
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrBudgetNotFound) {
			return nil, err
		}
		return nil, r.handleDatabaseError("reconciling budget progress", err, id)
	}

	return budget, nil
}
