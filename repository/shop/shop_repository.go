package shop

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/farhanadi/shopfront/model"
)

// ErrMissingIdentifier is returned before any query runs when a filter
// carries neither a primary key nor a slug.
var ErrMissingIdentifier = errors.New("shop: either id or slug is required")

type SQL struct {
	conn *sqlx.DB
}

type ShopRepository interface {
	Create(ctx context.Context, name, slug, image string) (*model.ShopEntity, error)
	Get(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error)
	List(ctx context.Context) ([]model.ShopEntity, error)
	Delete(ctx context.Context, id uint64) error
}

func NewShopRepository(conn *sqlx.DB) ShopRepository {
	return &SQL{conn: conn}
}

const (
	insertShopQuery  = `INSERT INTO shops (name, slug, image) VALUES (?, ?, ?)`
	getShopByIDQuery = `SELECT id, name, slug, image FROM shops WHERE id = ?`
	getShopBySlug    = `SELECT id, name, slug, image FROM shops WHERE slug = ?`
	listShopsQuery   = `SELECT id, name, slug, image FROM shops`
	deleteShopQuery  = `DELETE FROM shops WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, name, slug, image string) (*model.ShopEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertShopQuery, name, slug, image)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.ShopEntity
	if err := s.conn.QueryRowxContext(ctx, getShopByIDQuery, lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error) {
	var (
		query string
		arg   any
	)

	switch {
	case filter != nil && filter.ID != 0:
		query, arg = getShopByIDQuery, filter.ID
	case filter != nil && filter.Slug != "":
		query, arg = getShopBySlug, filter.Slug
	default:
		return nil, ErrMissingIdentifier
	}

	var entity model.ShopEntity
	if err := s.conn.QueryRowxContext(ctx, query, arg).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ShopEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listShopsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := make([]model.ShopEntity, 0)
	for rows.Next() {
		var entity model.ShopEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		shops = append(shops, entity)
	}
	return shops, rows.Err()
}

// Delete removes the shop row; products, product_category links and reviews
// go with it through the schema's ON DELETE CASCADE rules.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteShopQuery, id)
	return err
}
