package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// CategoryEnsurer lazily creates a category the first time a transaction
// references an unknown title. Creation is idempotent: an existing category
// with the same title visible to the creator makes the event a no-op.
//
// Two concurrent events for the same new title may race; the duplicate check
// is best-effort and the store's uniqueness constraint resolves the rest.
// Failures are logged and swallowed, the category will be re-attempted by the
// next transaction that references the same title.
type CategoryEnsurer struct {
	categories  persistence.CategoryRepository
	idGenerator coreport.IDGenerator
	logger      coreport.Logger
}

// NewCategoryEnsurer creates a new category auto-creation worker
func NewCategoryEnsurer(
	categories persistence.CategoryRepository,
	idGenerator coreport.IDGenerator,
	logger coreport.Logger,
) *CategoryEnsurer {
	return &CategoryEnsurer{
		categories:  categories,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// HandleEnsure guarantees a category exists for the (creator, title) pair
func (w *CategoryEnsurer) HandleEnsure(ctx context.Context, payload any) {
	event, ok := payload.(EnsureCategoryEvent)
	if !ok {
		w.logger.Error("Unexpected payload type for category ensure", map[string]any{
			"payload": fmt.Sprintf("%T", payload),
		})
		return
	}

	w.logger.Debug("Received ensure category event", map[string]any{
		"creator_id": event.CreatorID,
		"title":      event.Title,
	})

	if event.Title == "" {
		return
	}

	existing, err := w.categories.FindByTitleForOwner(ctx, event.Title, event.CreatorID)
	if err != nil && !errors.Is(err, errs.ErrCategoryNotFound) {
		w.logger.Error("Failed to look up category, dropping event", map[string]any{
			"creator_id": event.CreatorID,
			"title":      event.Title,
			"error":      err.Error(),
		})
		return
	}
	if existing != nil {
		w.logger.Debug("Category with the same title already exists", map[string]any{
			"category_id": existing.ID,
			"title":       existing.Title,
		})
		return
	}

	category := entity.NewCategory(w.idGenerator.NewID(), event.Title, event.CreatorID)
	if err := w.categories.Create(ctx, category); err != nil {
		// A lost race with a concurrent ensure for the same title surfaces as
		// a constraint violation; either way the category exists afterwards.
		w.logger.Error("Failed to create category, dropping event", map[string]any{
			"creator_id": event.CreatorID,
			"title":      event.Title,
			"error":      err.Error(),
		})
		return
	}

	w.logger.Debug("New category created", map[string]any{
		"category_id": category.ID,
		"title":       category.Title,
		"type":        category.Type,
	})
}
