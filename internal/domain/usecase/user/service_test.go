package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	authmocks "github.com/tobiadeyemi/pocketbudget/mocks/port/auth"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/core"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/persistence"
)

func newTestLogger() *core.MockLogger {
	mockLogger := new(core.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestService_Register(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := fixedTime.Add(24 * time.Hour)
	ctx := context.Background()

	t.Run("should create the account and issue a token", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockIDGenerator.On("NewID").Return("user-1")
		mockTimeProvider.On("Now").Return(fixedTime)

		mockUserRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, errs.ErrUserNotFound)
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockTokenManager.On("Generate", mock.AnythingOfType("*entity.User")).Return("signed-token", expiresAt, nil)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Register(ctx, RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice",
			Password: "hunter2hunter2",
			Currency: "USD",
		})

		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.User.ID)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		// The stored hash must verify against the original password
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("hunter2hunter2")))

		mockUserRepo.AssertExpectations(t)
		mockTokenManager.AssertExpectations(t)
	})

	t.Run("should reject a duplicate email", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		mockUserRepo.On("GetByEmail", ctx, "alice@example.com").Return(&entity.User{ID: "user-1"}, nil)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Register(ctx, RegisterRequest{
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject missing credentials", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Register(ctx, RegisterRequest{Email: "", Password: ""})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		mockUserRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockIDGenerator.On("NewID").Return("user-1")
		mockTimeProvider.On("Now").Return(fixedTime)

		dbError := errors.New("connection refused")
		mockUserRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, errs.ErrUserNotFound)
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(dbError)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Register(ctx, RegisterRequest{
			Email:    "alice@example.com",
			Password: "hunter2hunter2",
		})

		assert.Nil(t, result)
		assert.Equal(t, dbError, err)
		mockTokenManager.AssertNotCalled(t, "Generate", mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := fixedTime.Add(24 * time.Hour)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	account := &entity.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: string(hash),
	}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		mockUserRepo.On("GetByEmail", ctx, "alice@example.com").Return(account, nil)
		mockTokenManager.On("Generate", account).Return("signed-token", expiresAt, nil)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Login(ctx, "alice@example.com", "hunter2hunter2")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, account, result.User)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		mockUserRepo.On("GetByEmail", ctx, "alice@example.com").Return(account, nil)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Login(ctx, "alice@example.com", "wrong-password")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		mockTokenManager.AssertNotCalled(t, "Generate", mock.Anything)
	})

	t.Run("should not reveal whether the account exists", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)

		mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		result, err := service.Login(ctx, "ghost@example.com", "hunter2hunter2")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestService_UpdateFcmToken(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	actor := &authport.Claims{UserID: "user-1"}

	t.Run("should store the token for the acting user", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockUserRepo.On("UpdateFcmToken", ctx, "user-1", "device-1", fixedTime).Return(nil)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		assert.NoError(t, service.UpdateFcmToken(ctx, "device-1", actor))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should propagate a missing user", func(t *testing.T) {
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenManager := new(authmocks.MockTokenManager)
		mockIDGenerator := new(core.MockIDGenerator)
		mockTimeProvider := new(core.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		mockUserRepo.On("UpdateFcmToken", ctx, "user-1", "device-1", fixedTime).Return(errs.ErrUserNotFound)

		service := NewService(mockUserRepo, mockTokenManager, mockIDGenerator, mockTimeProvider, newTestLogger())

		assert.ErrorIs(t, service.UpdateFcmToken(ctx, "device-1", actor), errs.ErrUserNotFound)
	})
}
