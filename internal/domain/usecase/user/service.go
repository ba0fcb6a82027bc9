package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// RegisterRequest carries the fields for a new account
type RegisterRequest struct {
	Email    string
	Username string
	Password string
	Currency string
}

// AuthResult is returned after a successful login or registration
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// Service handles accounts: registration, login and profile operations
type Service struct {
	users        persistence.UserRepository
	tokens       authport.TokenManager
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user service
func NewService(
	users persistence.UserRepository,
	tokens authport.TokenManager,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		tokens:       tokens,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account and issues an access token
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", errs.ErrInvalidRequest)
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password", errs.ErrInternalServer)
	}

	account := &entity.User{
		ID:           s.idGenerator.NewID(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Currency:     req.Currency,
		CreatedAt:    s.timeProvider.Now(),
	}

	if err := s.users.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": account.ID,
	})

	return s.issueToken(account)
}

// Login verifies credentials and issues an access token
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": account.ID,
	})

	return s.issueToken(account)
}

// GetProfile returns the acting user's account
func (s *Service) GetProfile(ctx context.Context, actor *authport.Claims) (*entity.User, error) {
	return s.users.GetByID(ctx, actor.UserID)
}

// UpdateFcmToken registers or replaces the user's push notification token
func (s *Service) UpdateFcmToken(ctx context.Context, token string, actor *authport.Claims) error {
	if err := s.users.UpdateFcmToken(ctx, actor.UserID, token, s.timeProvider.Now()); err != nil {
		s.logger.Error("Failed to update push token", map[string]any{
			"user_id": actor.UserID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("Push token updated", map[string]any{
		"user_id": actor.UserID,
	})
	return nil
}

func (s *Service) issueToken(account *entity.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(account)
	if err != nil {
		s.logger.Error("Failed to issue access token", map[string]any{
			"user_id": account.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &AuthResult{
		User:      account,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
