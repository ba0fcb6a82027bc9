package dto

import (
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// CreateBudgetRequest is the payload for POST /api/budgets
type CreateBudgetRequest struct {
	Title                  string  `json:"title" binding:"required"`
	Description            string  `json:"description"`
	Amount                 string  `json:"amount" binding:"required"`
	Category               string  `json:"category"`
	CategoryID             string  `json:"categoryId"`
	ReceiveAlert           bool    `json:"receiveAlert"`
	ReceiveAlertPercentage float64 `json:"receiveAlertPercentage"`
}

// UpdateBudgetRequest is the payload for PUT /api/budgets/:id
type UpdateBudgetRequest struct {
	Title                  string  `json:"title"`
	Description            string  `json:"description"`
	Amount                 string  `json:"amount"`
	Category               string  `json:"category"`
	CategoryID             string  `json:"categoryId"`
	ReceiveAlert           bool    `json:"receiveAlert"`
	ReceiveAlertPercentage float64 `json:"receiveAlertPercentage"`
	Status                 string  `json:"status"`
}

// BudgetResponse is the public projection of a budget
type BudgetResponse struct {
	ID                     string     `json:"id"`
	Title                  string     `json:"title"`
	Description            string     `json:"description,omitempty"`
	Amount                 string     `json:"amount"`
	Category               string     `json:"category,omitempty"`
	CategoryID             string     `json:"categoryId,omitempty"`
	ReceiveAlert           bool       `json:"receiveAlert"`
	ReceiveAlertPercentage float64    `json:"receiveAlertPercentage"`
	ProgressValue          string     `json:"progressValue"`
	LimitExceeded          bool       `json:"limitExceeded"`
	Status                 string     `json:"status"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"`
}

// BudgetListResponse is a paged list of budgets
type BudgetListResponse struct {
	Items []BudgetResponse `json:"items"`
	Total int64            `json:"total"`
}

// BudgetOptionResponse is the id/title projection used for dropdowns
type BudgetOptionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ToBudgetResponse converts a budget entity to its response projection
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:                     budget.ID,
		Title:                  budget.Title,
		Description:            budget.Description,
		Amount:                 budget.GetAmount(),
		Category:               budget.Category,
		CategoryID:             budget.CategoryID,
		ReceiveAlert:           budget.ReceiveAlert,
		ReceiveAlertPercentage: budget.ReceiveAlertPercentage,
		ProgressValue:          budget.GetProgressValue(),
		LimitExceeded:          budget.LimitExceeded,
		Status:                 string(budget.Status),
		CreatedAt:              budget.CreatedAt,
		UpdatedAt:              budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a page of budget entities
func ToBudgetListResponse(budgets []entity.Budget, total int64) BudgetListResponse {
	items := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		items = append(items, ToBudgetResponse(&budgets[i]))
	}
	return BudgetListResponse{Items: items, Total: total}
}

// ToBudgetOptionResponses converts dropdown options
func ToBudgetOptionResponses(options []persistence.BudgetOption) []BudgetOptionResponse {
	items := make([]BudgetOptionResponse, 0, len(options))
	for _, o := range options {
		items = append(items, BudgetOptionResponse{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
		})
	}
	return items
}
