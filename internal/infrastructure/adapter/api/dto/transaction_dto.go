package dto

import (
	"time"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// CreateTransactionRequest is the payload for POST /api/transactions
type CreateTransactionRequest struct {
	Type                     string     `json:"type" binding:"required"`
	Amount                   string     `json:"amount" binding:"required"`
	Currency                 string     `json:"currency"`
	Category                 string     `json:"category" binding:"required"`
	Description              string     `json:"description"`
	InvoiceURL               string     `json:"invoiceUrl"`
	BudgetID                 string     `json:"budgetId"`
	RepeatTransaction        bool       `json:"repeatTransaction"`
	RepeatInterval           int        `json:"repeatInterval"`
	RepeatFrequency          string     `json:"repeatFrequency"`
	RepeatTransactionEndDate *time.Time `json:"repeatTransactionEndDate"`
}

// UpdateTransactionRequest is the payload for PATCH /api/transactions/:id
type UpdateTransactionRequest struct {
	Amount                   string     `json:"amount"`
	Category                 string     `json:"category"`
	Description              string     `json:"description"`
	InvoiceURL               string     `json:"invoiceUrl"`
	BudgetID                 string     `json:"budgetId"`
	RepeatTransaction        bool       `json:"repeatTransaction"`
	RepeatInterval           int        `json:"repeatInterval"`
	RepeatFrequency          string     `json:"repeatFrequency"`
	RepeatTransactionEndDate *time.Time `json:"repeatTransactionEndDate"`
}

// TransactionResponse is the public projection of a transaction
type TransactionResponse struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	Amount            string     `json:"amount"`
	Currency          string     `json:"currency"`
	Category          string     `json:"category"`
	Description       string     `json:"description,omitempty"`
	InvoiceURL        string     `json:"invoiceUrl,omitempty"`
	BudgetID          string     `json:"budgetId,omitempty"`
	Account           string     `json:"account"`
	RepeatTransaction bool       `json:"repeatTransaction"`
	RepeatFrequency   string     `json:"repeatFrequency,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// TransactionListResponse is a paged list of transactions
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int64                 `json:"total"`
}

// ToTransactionResponse converts a transaction entity to its response projection
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                txn.ID,
		Type:              string(txn.Type),
		Amount:            txn.GetAmount(),
		Currency:          txn.Currency,
		Category:          txn.Category,
		Description:       txn.Description,
		InvoiceURL:        txn.InvoiceURL,
		BudgetID:          txn.BudgetID,
		Account:           txn.Account,
		RepeatTransaction: txn.RepeatTransaction,
		RepeatFrequency:   string(txn.RepeatFrequency),
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a page of transaction entities
func ToTransactionListResponse(txns []entity.Transaction, total int64) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, ToTransactionResponse(&txns[i]))
	}
	return TransactionListResponse{Items: items, Total: total}
}
