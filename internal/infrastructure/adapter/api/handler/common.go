package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to its HTTP status and standardized body
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case domainerr.IsDuplicateEmailError(err):
		status = http.StatusConflict
		message = err.Error()
	case domainerr.IsInvalidCredentialsError(err):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerr.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrInvalidTransactionType),
		errors.Is(err, domainerr.ErrInvalidTitle),
		errors.Is(err, domainerr.ErrInvalidRequest):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrConstraintViolation):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest returns a 400 with the invalid-request code
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
