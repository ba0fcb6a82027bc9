package model

// Category represents the database model for categories. CreatorID is empty
// for the shared General scope; the composite index backs the lazy-creation
// lookup on (title, creator).
type Category struct {
	ID        string `gorm:"primaryKey;size:36"`
	Title     string `gorm:"not null;size:255;index:idx_categories_title_creator"`
	CreatorID string `gorm:"size:36;index:idx_categories_title_creator"`
	Type      string `gorm:"not null;size:50"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
