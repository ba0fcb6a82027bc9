package dto

import (
	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
)

// CategoryResponse is the public projection of a category
type CategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// ToCategoryResponses converts category entities to their response projection
func ToCategoryResponses(categories []entity.Category) []CategoryResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryResponse{
			ID:    c.ID,
			Title: c.Title,
			Type:  string(c.Type),
		})
	}
	return items
}
