package model

// ReviewEntity represents the shop_reviews table entity. Username is free
// text, not a reference to the users table.
type ReviewEntity struct {
	ID       uint64 `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Text     string `db:"text" json:"text"`
	ShopID   uint64 `db:"shop_id" json:"shop_id"`
}

// CreateReviewRequest for review creation
type CreateReviewRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Text     string `json:"text" validate:"required"`
}
