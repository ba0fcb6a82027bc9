package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
	budgetUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/budget"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/dto"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/middleware"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *budgetUseCase.Service
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgetService *budgetUseCase.Service, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Create handles POST /api/budgets
func (h *BudgetHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	budget, err := h.budgetService.Create(c.Request.Context(), budgetUseCase.CreateRequest{
		Title:                  req.Title,
		Description:            req.Description,
		Amount:                 req.Amount,
		Category:               req.Category,
		CategoryID:             req.CategoryID,
		ReceiveAlert:           req.ReceiveAlert,
		ReceiveAlertPercentage: req.ReceiveAlertPercentage,
	}, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// List handles GET /api/budgets
func (h *BudgetHandler) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	filter := persistence.BudgetFilter{
		Status:   c.Query("status"),
		Query:    c.Query("q"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 20),
	}

	budgets, total, err := h.budgetService.List(c.Request.Context(), filter, claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetListResponse(budgets, total))
}

// ListOptions handles GET /api/budgets/dropdown
func (h *BudgetHandler) ListOptions(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	options, err := h.budgetService.ListOptions(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetOptionResponses(options))
}

// GetByID handles GET /api/budgets/:id
func (h *BudgetHandler) GetByID(c *gin.Context) {
	budget, err := h.budgetService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// Update handles PUT /api/budgets/:id
func (h *BudgetHandler) Update(c *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	budget, err := h.budgetService.Update(c.Request.Context(), c.Param("id"), budgetUseCase.UpdateRequest{
		Title:                  req.Title,
		Description:            req.Description,
		Amount:                 req.Amount,
		Category:               req.Category,
		CategoryID:             req.CategoryID,
		ReceiveAlert:           req.ReceiveAlert,
		ReceiveAlertPercentage: req.ReceiveAlertPercentage,
		Status:                 req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// Delete handles DELETE /api/budgets/:id
func (h *BudgetHandler) Delete(c *gin.Context) {
	if err := h.budgetService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
