package model

// ProductEntity represents the products table entity. ShopName/ShopSlug are
// populated by queries that join shops; plain list queries leave them empty.
type ProductEntity struct {
	ID          uint64  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Image       string  `db:"image" json:"image,omitempty"`
	Description string  `db:"description" json:"description,omitempty"`
	ShopID      uint64  `db:"shop_id" json:"shop_id"`
	ShopName    string  `db:"shop_name" json:"shop_name,omitempty"`
	ShopSlug    string  `db:"shop_slug" json:"shop_slug,omitempty"`
}

// CreateProductRequest for product creation. CategoryIDs link the product to
// existing categories in the same call.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Image       string   `json:"image" validate:"omitempty,max=256"`
	Description string   `json:"description"`
	CategoryIDs []uint64 `json:"category_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateProductRequest replaces the four mutable product fields. The owning
// shop and the category links are immutable through this path.
type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image" validate:"omitempty,max=256"`
}

// ProductDetailResponse is a product plus its categories
type ProductDetailResponse struct {
	Product    *ProductEntity   `json:"product"`
	Categories []CategoryEntity `json:"categories"`
}
