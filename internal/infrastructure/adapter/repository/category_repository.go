package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/model"
)

// CategoryRepository implements persistence.CategoryRepository using GORM
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a category model to an entity
func (r *CategoryRepository) modelToEntity(categoryModel *model.Category) *entity.Category {
	return &entity.Category{
		ID:        categoryModel.ID,
		Title:     categoryModel.Title,
		CreatorID: categoryModel.CreatorID,
		Type:      entity.CategoryType(categoryModel.Type),
	}
}

// FindByTitleForOwner looks up a category with this title visible to the
// creator: owned by the creator or in the shared General scope
func (r *CategoryRepository) FindByTitleForOwner(ctx context.Context, title, creatorID string) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).
		Where("title = ? AND (creator_id = ? OR creator_id = '')", title, creatorID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		r.logger.Error("Database error when finding category", map[string]any{
			"title": title,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}
	return r.modelToEntity(&categoryModel), nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.Category{
		ID:        category.ID,
		Title:     category.Title,
		CreatorID: category.CreatorID,
		Type:      string(category.Type),
	}

	result := r.db.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrConstraintViolation
		}
		r.logger.Error("Database error when creating category", map[string]any{
			"title": category.Title,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}
	return nil
}

// ListForOwner returns every category visible to the creator: their own plus
// the shared General set
func (r *CategoryRepository) ListForOwner(ctx context.Context, creatorID string) ([]entity.Category, error) {
	var categoryModels []model.Category
	err := r.db.WithContext(ctx).
		Where("creator_id = ? OR creator_id = ''", creatorID).
		Order("title ASC").
		Find(&categoryModels).Error
	if err != nil {
		r.logger.Error("Database error when listing categories", map[string]any{
			"creator_id": creatorID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	categories := make([]entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, *r.modelToEntity(&categoryModels[i]))
	}
	return categories, nil
}
