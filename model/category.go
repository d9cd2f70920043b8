package model

// CategoryEntity represents the categories table entity
type CategoryEntity struct {
	ID    uint64 `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Image string `db:"image" json:"image,omitempty"`
}

// CategoryFilter for looking up a category. Exactly one of ID or Name must be set.
type CategoryFilter struct {
	ID   uint64
	Name string
}

// CreateCategoryRequest for category creation
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=64"`
	Image string `json:"image" validate:"omitempty,max=256"`
}
