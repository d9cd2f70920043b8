package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/farhanadi/shopfront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	getUserBase     = `SELECT id, username, email, password_hash FROM users WHERE true`
	existsUserQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ? OR email = ?)`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Username, data.Email, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// ExistsByUsernameOrEmail reports whether either value is already taken. It
// is a pre-create convenience only: the unique constraints remain the source
// of truth, and a concurrent create still fails with a duplicate-key error.
func (s *SQL) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsUserQuery, username, email); err != nil {
		return false, err
	}
	return exists, nil
}
