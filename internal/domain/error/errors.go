package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidRequest      = 4002
	CodeInvalidCredentials  = 4003
	CodeDuplicateEmail      = 4004
	CodeConstraintViolation = 4005
	CodeAmountOverflow      = 4006
	CodeUnauthorized        = 4010
	CodeBudgetNotFound      = 4041
	CodeTransactionNotFound = 4042
	CodeCategoryNotFound    = 4043
	CodeUserNotFound        = 4044

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount is too large and would overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidTransactionType is returned when the transaction type is not Income or Expense
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTitle is returned when a required title field is empty
	ErrInvalidTitle = errors.New("title cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrBudgetNotFound is returned when the requested budget doesn't exist
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotFound is returned when the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateEmail is returned when registering with an email that already exists
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a request carries no valid identity
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidTransactionType), errors.Is(err, ErrInvalidTitle):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// ReconciliationError represents a failure while recomputing a budget's progress.
// It never propagates to the request that triggered the reconciliation; it exists
// to carry structured context into the logs.
type ReconciliationError struct {
	BudgetID  string
	Operation string
	Err       error
}

// Error implements the error interface for ReconciliationError
func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("budget reconciliation failed for budget %s during %s: %v",
		e.BudgetID, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReconciliationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reconciliation_error",
		"budget_id":  e.BudgetID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewReconciliationError creates a detailed reconciliation error
func NewReconciliationError(budgetID, operation string, err error) error {
	return &ReconciliationError{
		BudgetID:  budgetID,
		Operation: operation,
		Err:       err,
	}
}

// NotificationError represents a failure while dispatching a push notification
type NotificationError struct {
	Title string
	Err   error
}

// Error implements the error interface for NotificationError
func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification dispatch failed for %q: %v", e.Title, e.Err)
}

// Unwrap returns the underlying error
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *NotificationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "notification_error",
		"title":      e.Title,
		"error":      e.Err.Error(),
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrBudgetNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsBudgetNotFoundError checks if the error is a budget not found error
func IsBudgetNotFoundError(err error) bool {
	return errors.Is(err, ErrBudgetNotFound)
}

// IsDuplicateEmailError checks if the error reports an already registered email
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

// IsInvalidCredentialsError checks if the error reports failed authentication
func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
