package entity

// CategoryType represents the visibility scope of a category
type CategoryType string

// Category types
const (
	// CategoryTypePersonal is a category owned by a single user
	CategoryTypePersonal CategoryType = "Personal"
	// CategoryTypeGeneral is a shared category visible to every user
	CategoryTypeGeneral CategoryType = "General"
)

// Category labels transactions and budgets. Categories are created lazily the
// first time a transaction references an unknown title; they are never
// auto-deleted. At most one category exists per (title, effective owner) pair.
type Category struct {
	ID        string
	Title     string
	CreatorID string // empty means the shared General scope
	Type      CategoryType
}

// NewCategory creates a category scoped to the creator, or to the shared
// General scope when creatorID is empty
func NewCategory(id, title, creatorID string) *Category {
	categoryType := CategoryTypePersonal
	if creatorID == "" {
		categoryType = CategoryTypeGeneral
	}
	return &Category{
		ID:        id,
		Title:     title,
		CreatorID: creatorID,
		Type:      categoryType,
	}
}
