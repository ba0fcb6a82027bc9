package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	categoryUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/category"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/dto"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/middleware"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *categoryUseCase.Service
	logger          coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categoryService *categoryUseCase.Service, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}
