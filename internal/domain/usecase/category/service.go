package category

import (
	"context"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// Service lists the categories visible to a user: their own plus the shared
// General set. Category creation happens asynchronously through the category
// worker, so there is no create operation here.
type Service struct {
	categories persistence.CategoryRepository
	logger     coreport.Logger
}

// NewService creates a new category service
func NewService(categories persistence.CategoryRepository, logger coreport.Logger) *Service {
	return &Service{
		categories: categories,
		logger:     logger,
	}
}

// List returns every category visible to the acting user
func (s *Service) List(ctx context.Context, actor *authport.Claims) ([]entity.Category, error) {
	return s.categories.ListForOwner(ctx, actor.UserID)
}
