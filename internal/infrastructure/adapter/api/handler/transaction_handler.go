package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
	reportUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/report"
	transactionUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/transaction"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/dto"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *transactionUseCase.Service
	reportService      *reportUseCase.Service
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	transactionService *transactionUseCase.Service,
	reportService *reportUseCase.Service,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		reportService:      reportService,
		logger:             logger,
	}
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactionService.Create(c.Request.Context(), transactionUseCase.CreateRequest{
		Type:                     req.Type,
		Amount:                   req.Amount,
		Currency:                 req.Currency,
		Category:                 req.Category,
		Description:              req.Description,
		InvoiceURL:               req.InvoiceURL,
		BudgetID:                 req.BudgetID,
		RepeatTransaction:        req.RepeatTransaction,
		RepeatInterval:           req.RepeatInterval,
		RepeatFrequency:          req.RepeatFrequency,
		RepeatTransactionEndDate: req.RepeatTransactionEndDate,
	}, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	filter := persistence.TransactionFilter{
		Type:     c.Query("type"),
		Currency: c.Query("currency"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 20),
	}

	txns, total, err := h.transactionService.List(c.Request.Context(), filter, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns, total))
}

// Summary handles GET /api/transactions/summary
func (h *TransactionHandler) Summary(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	period := c.DefaultQuery("period", reportUseCase.PeriodMonth)
	summary, err := h.reportService.RevenueSummary(c.Request.Context(), period, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevenueSummaryResponse{
		Period:  summary.Period,
		Income:  summary.Income,
		Expense: summary.Expense,
	})
}

// ListForBudget handles GET /api/transactions/budget/:id
func (h *TransactionHandler) ListForBudget(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	txns, err := h.transactionService.ListForBudget(c.Request.Context(), c.Param("id"), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns, int64(len(txns))))
}

// GetByID handles GET /api/transactions/:id
func (h *TransactionHandler) GetByID(c *gin.Context) {
	txn, err := h.transactionService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Update handles PATCH /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.transactionService.Update(c.Request.Context(), c.Param("id"), transactionUseCase.UpdateRequest{
		Amount:                   req.Amount,
		Category:                 req.Category,
		Description:              req.Description,
		InvoiceURL:               req.InvoiceURL,
		BudgetID:                 req.BudgetID,
		RepeatTransaction:        req.RepeatTransaction,
		RepeatInterval:           req.RepeatInterval,
		RepeatFrequency:          req.RepeatFrequency,
		RepeatTransactionEndDate: req.RepeatTransactionEndDate,
	}, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// queryInt reads an integer query parameter with a fallback
func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
