package model

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64 `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Username string
	Email    string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=36"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
