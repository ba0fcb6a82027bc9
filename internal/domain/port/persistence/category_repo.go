package persistence

import (
	"context"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// CategoryRepository defines operations for managing categories
type CategoryRepository interface {
	// FindByTitleForOwner looks up a category with this title visible to the
	// creator: owned by the creator or in the shared General scope. Returns
	// ErrCategoryNotFound when no such category exists.
	FindByTitleForOwner(ctx context.Context, title, creatorID string) (*entity.Category, error)

	Create(ctx context.Context, category *entity.Category) error

	// ListForOwner returns every category visible to the creator
	ListForOwner(ctx context.Context, creatorID string) ([]entity.Category, error)
}
