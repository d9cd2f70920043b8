package model

// Cart is the redis-backed shopping cart. It is keyed by a client-held uuid
// and never touches the relational store.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// CartItem is one product entry in a cart
type CartItem struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// AddCartItemRequest for adding a product to the cart
type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}
