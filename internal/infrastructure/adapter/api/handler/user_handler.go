package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	userUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/user"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/dto"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile handles GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateFcmToken handles PUT /api/users/fcm-token
func (h *UserHandler) UpdateFcmToken(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondBadRequest(c, "Missing authentication context")
		return
	}

	var req dto.FcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	if err := h.userService.UpdateFcmToken(c.Request.Context(), req.Token, claims); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
