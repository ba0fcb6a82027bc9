package migration

import (
	"context"
	"errors"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// Default shared category titles seeded for every installation
var defaultCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Utilities",
	"Entertainment",
	"Health",
	"Salary",
	"Savings",
}

// SeedDefaultCategories creates the shared General categories if they are
// missing. Safe to run on every startup.
func SeedDefaultCategories(ctx context.Context, categories persistence.CategoryRepository, idGenerator coreport.IDGenerator) error {
	for _, title := range defaultCategories {
		_, err := categories.FindByTitleForOwner(ctx, title, "")
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrCategoryNotFound) {
			return err
		}

		if err := categories.Create(ctx, entity.NewCategory(idGenerator.NewID(), title, "")); err != nil {
			return err
		}
	}

	return nil
}
