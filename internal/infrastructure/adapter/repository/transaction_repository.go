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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                       txnModel.ID,
		Type:                     entity.TransactionType(txnModel.Type),
		AmountInCents:            txnModel.AmountInCents,
		Currency:                 txnModel.Currency,
		Category:                 txnModel.Category,
		Description:              txnModel.Description,
		InvoiceURL:               txnModel.InvoiceURL,
		UserID:                   txnModel.UserID,
		Username:                 txnModel.Username,
		BudgetID:                 txnModel.BudgetID,
		Account:                  txnModel.Account,
		RepeatTransaction:        txnModel.RepeatTransaction,
		RepeatInterval:           txnModel.RepeatInterval,
		RepeatFrequency:          entity.RepeatFrequency(txnModel.RepeatFrequency),
		RepeatTransactionEndDate: txnModel.RepeatTransactionEndDate,
		Month:                    txnModel.Month,
		Year:                     txnModel.Year,
		CreatedAt:                txnModel.CreatedAt,
		CreatedBy:                txnModel.CreatedBy,
		UpdatedAt:                txnModel.UpdatedAt,
		UpdatedBy:                txnModel.UpdatedBy,
	}
}

// entityToModel converts a transaction entity to a model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:                       txn.ID,
		Type:                     string(txn.Type),
		AmountInCents:            txn.AmountInCents,
		Currency:                 txn.Currency,
		Category:                 txn.Category,
		Description:              txn.Description,
		InvoiceURL:               txn.InvoiceURL,
		UserID:                   txn.UserID,
		Username:                 txn.Username,
		BudgetID:                 txn.BudgetID,
		Account:                  txn.Account,
		RepeatTransaction:        txn.RepeatTransaction,
		RepeatInterval:           txn.RepeatInterval,
		RepeatFrequency:          string(txn.RepeatFrequency),
		RepeatTransactionEndDate: txn.RepeatTransactionEndDate,
		Month:                    txn.Month,
		Year:                     txn.Year,
		CreatedAt:                txn.CreatedAt,
		CreatedBy:                txn.CreatedBy,
		UpdatedAt:                txn.UpdatedAt,
		UpdatedBy:                txn.UpdatedBy,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, txnID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": txnID,
		"error":          err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	result := r.db.WithContext(ctx).Create(r.entityToModel(txn))
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, txn.ID)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).First(&txnModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}
	return r.modelToEntity(&txnModel), nil
}

// Update replaces the mutable fields of a transaction
func (r *TransactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]interface{}{
			"amount_in_cents":             txn.AmountInCents,
			"category":                    txn.Category,
			"description":                 txn.Description,
			"invoice_url":                 txn.InvoiceURL,
			"budget_id":                   txn.BudgetID,
			"repeat_transaction":          txn.RepeatTransaction,
			"repeat_interval":             txn.RepeatInterval,
			"repeat_frequency":            string(txn.RepeatFrequency),
			"repeat_transaction_end_date": txn.RepeatTransactionEndDate,
			"updated_at":                  txn.UpdatedAt,
			"updated_by":                  txn.UpdatedBy,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, txn.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction and returns the deleted record so the caller
// can emit reconciliation events for its budget
func (r *TransactionRepository) Delete(ctx context.Context, id string) (*entity.Transaction, error) {
	var deleted *entity.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txnModel model.Transaction
		result := tx.First(&txnModel, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Delete(&model.Transaction{}, "id = ?", id).Error; err != nil {
			return err
		}

		deleted = r.modelToEntity(&txnModel)
		return nil
	})
	if err != nil {
		return nil, r.handleDatabaseError("deleting transaction", err, id)
	}

	return deleted, nil
}

// Filter returns a filtered page of a user's transactions with the total match count
func (r *TransactionRepository) Filter(ctx context.Context, filter persistence.TransactionFilter, userID string) ([]entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", userID)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("category ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting transactions", err, "")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var txnModels []model.Transaction
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing transactions", err, "")
	}

	txns := make([]entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, *r.modelToEntity(&txnModels[i]))
	}
	return txns, total, nil
}

// ListForBudget returns a user's transactions tied to a budget
func (r *TransactionRepository) ListForBudget(ctx context.Context, budgetID, userID string) ([]entity.Transaction, error) {
	var txnModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("budget_id = ? AND user_id = ?", budgetID, userID).
		Order("created_at DESC").
		Find(&txnModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing budget transactions", err, "")
	}

	txns := make([]entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, *r.modelToEntity(&txnModels[i]))
	}
	return txns, nil
}

// SumAmountForBudget returns the aggregate amount, in cents, of all
// transactions currently tied to the budget for the given user
func (r *TransactionRepository) SumAmountForBudget(ctx context.Context, budgetID, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Where("budget_id = ? AND user_id = ?", budgetID, userID).
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("aggregating budget total", err, "")
	}
	return total, nil
}

// SumAmountByType returns the aggregate amount, in cents, of a user's
// transactions of the given type created within [from, to]
func (r *TransactionRepository) SumAmountByType(ctx context.Context, userID string, txType entity.TransactionType, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Where("user_id = ? AND type = ? AND created_at BETWEEN ? AND ?", userID, string(txType), from, to).
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("aggregating by type", err, "")
	}
	return total, nil
}
