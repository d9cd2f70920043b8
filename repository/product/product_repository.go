package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/farhanadi/shopfront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	Create(ctx context.Context, req *model.ProductEntity) (*model.ProductEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	List(ctx context.Context) ([]model.ProductEntity, error)
	ListByShop(ctx context.Context, shopID uint64) ([]model.ProductEntity, error)
	ListByShopCategory(ctx context.Context, shopID, categoryID uint64) ([]model.ProductEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error)
	Delete(ctx context.Context, id uint64) error
	AddCategory(ctx context.Context, productID, categoryID uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery = `INSERT INTO products (name, price, image, description, shop_id) VALUES (?, ?, ?, ?, ?)`

	getProductQuery = `SELECT p.id, p.name, p.price, p.image, p.description, p.shop_id, s.name AS shop_name, s.slug AS shop_slug
FROM products p
JOIN shops s ON s.id = p.shop_id
WHERE p.id = ?`

	listProductsQuery = `SELECT p.id, p.name, p.price, p.image, p.description, p.shop_id, s.name AS shop_name, s.slug AS shop_slug
FROM products p
JOIN shops s ON s.id = p.shop_id`

	listProductsByShop = `SELECT id, name, price, image, description, shop_id
FROM products
WHERE shop_id = ?`

	listProductsByShopCategory = `SELECT p.id, p.name, p.price, p.image, p.description, p.shop_id
FROM products p
JOIN product_category pc ON pc.product_id = p.id
WHERE p.shop_id = ? AND pc.category_id = ?`

	// Update replaces the four mutable fields only; shop_id never changes
	// through this statement. The re-read does not join shops.
	updateProductQuery = `UPDATE products SET name = ?, price = ?, description = ?, image = ? WHERE id = ?`
	reloadProductQuery = `SELECT id, name, price, image, description, shop_id FROM products WHERE id = ?`

	deleteProductQuery = `DELETE FROM products WHERE id = ?`

	insertProductCategory = `INSERT INTO product_category (product_id, category_id) VALUES (?, ?)`
)

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.Name, data.Price, data.Image, data.Description, data.ShopID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ProductEntity, error) {
	return s.queryList(ctx, listProductsQuery)
}

func (s *SQL) ListByShop(ctx context.Context, shopID uint64) ([]model.ProductEntity, error) {
	return s.queryList(ctx, listProductsByShop, shopID)
}

func (s *SQL) ListByShopCategory(ctx context.Context, shopID, categoryID uint64) ([]model.ProductEntity, error) {
	return s.queryList(ctx, listProductsByShopCategory, shopID, categoryID)
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error) {
	if _, err := s.conn.ExecContext(ctx, updateProductQuery,
		req.Name, req.Price, req.Description, req.Image, id); err != nil {
		return nil, err
	}

	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, reloadProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}

// AddCategory inserts one join row. A duplicate pair violates the composite
// primary key and an unknown id violates a foreign key; both surface as
// driver errors for the caller to classify.
func (s *SQL) AddCategory(ctx context.Context, productID, categoryID uint64) error {
	_, err := s.conn.ExecContext(ctx, insertProductCategory, productID, categoryID)
	return err
}

func (s *SQL) queryList(ctx context.Context, query string, args ...any) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.ProductEntity, 0)
	for rows.Next() {
		var entity model.ProductEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		products = append(products, entity)
	}
	return products, rows.Err()
}
