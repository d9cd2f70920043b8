package model

// ShopEntity represents the shops table entity
type ShopEntity struct {
	ID    uint64 `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Slug  string `db:"slug" json:"slug"`
	Image string `db:"image" json:"image,omitempty"`
}

// ShopFilter for looking up a shop. Exactly one of ID or Slug must be set.
type ShopFilter struct {
	ID   uint64
	Slug string
}

// CreateShopRequest for shop creation
type CreateShopRequest struct {
	Name  string `json:"name" validate:"required,max=64"`
	Slug  string `json:"slug" validate:"required,max=64,slug"`
	Image string `json:"image" validate:"omitempty,max=256"`
}

// ShopDetailResponse bundles a shop with its related rows for the detail page
type ShopDetailResponse struct {
	Shop       *ShopEntity      `json:"shop"`
	Products   []ProductEntity  `json:"products"`
	Categories []CategoryEntity `json:"categories"`
	Reviews    []ReviewEntity   `json:"reviews"`
}
