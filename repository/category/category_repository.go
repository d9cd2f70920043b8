package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/farhanadi/shopfront/model"
)

// ErrMissingIdentifier is returned before any query runs when a filter
// carries neither a primary key nor a name.
var ErrMissingIdentifier = errors.New("category: either id or name is required")

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	Create(ctx context.Context, name, image string) (*model.CategoryEntity, error)
	Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error)
	List(ctx context.Context) ([]model.CategoryEntity, error)
	ListByShop(ctx context.Context, shopID uint64) ([]model.CategoryEntity, error)
	ListByProduct(ctx context.Context, productID uint64) ([]model.CategoryEntity, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	insertCategoryQuery  = `INSERT INTO categories (name, image) VALUES (?, ?)`
	getCategoryByIDQuery = `SELECT id, name, image FROM categories WHERE id = ?`
	getCategoryByName    = `SELECT id, name, image FROM categories WHERE name = ?`
	listCategoriesQuery  = `SELECT id, name, image FROM categories`

	// Categories a shop covers, through its products. A shop's products can
	// share categories, hence DISTINCT; ordering is part of the contract.
	listCategoriesByShop = `SELECT DISTINCT c.id, c.name, c.image
FROM categories c
JOIN product_category pc ON pc.category_id = c.id
JOIN products p ON p.id = pc.product_id
WHERE p.shop_id = ?
ORDER BY c.name`

	listCategoriesByProduct = `SELECT c.id, c.name, c.image
FROM product_category pc
JOIN categories c ON c.id = pc.category_id
WHERE pc.product_id = ?`
)

func (s *SQL) Create(ctx context.Context, name, image string) (*model.CategoryEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCategoryQuery, name, image)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, getCategoryByIDQuery, lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error) {
	var (
		query string
		arg   any
	)

	switch {
	case filter != nil && filter.ID != 0:
		query, arg = getCategoryByIDQuery, filter.ID
	case filter != nil && filter.Name != "":
		query, arg = getCategoryByName, filter.Name
	default:
		return nil, ErrMissingIdentifier
	}

	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, query, arg).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	return s.queryList(ctx, listCategoriesQuery)
}

func (s *SQL) ListByShop(ctx context.Context, shopID uint64) ([]model.CategoryEntity, error) {
	return s.queryList(ctx, listCategoriesByShop, shopID)
}

func (s *SQL) ListByProduct(ctx context.Context, productID uint64) ([]model.CategoryEntity, error) {
	return s.queryList(ctx, listCategoriesByProduct, productID)
}

func (s *SQL) queryList(ctx context.Context, query string, args ...any) ([]model.CategoryEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.CategoryEntity, 0)
	for rows.Next() {
		var entity model.CategoryEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		categories = append(categories, entity)
	}
	return categories, rows.Err()
}
