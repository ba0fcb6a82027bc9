package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	userUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/user"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *userUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.userService.Register(c.Request.Context(), userUseCase.RegisterRequest{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Currency: req.Currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.ToUserResponse(result.User),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      dto.ToUserResponse(result.User),
	})
}
