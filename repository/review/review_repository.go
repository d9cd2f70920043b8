package review

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/farhanadi/shopfront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReviewRepository interface {
	Create(ctx context.Context, username, text string, shopID uint64) (*model.ReviewEntity, error)
	ListByShop(ctx context.Context, shopID uint64) ([]model.ReviewEntity, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery  = `INSERT INTO shop_reviews (username, text, shop_id) VALUES (?, ?, ?)`
	getReviewByIDQuery = `SELECT id, username, text, shop_id FROM shop_reviews WHERE id = ?`
	listReviewsByShop  = `SELECT id, username, text, shop_id FROM shop_reviews WHERE shop_id = ?`
)

func (s *SQL) Create(ctx context.Context, username, text string, shopID uint64) (*model.ReviewEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertReviewQuery, username, text, shopID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.ReviewEntity
	if err := s.conn.QueryRowxContext(ctx, getReviewByIDQuery, lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByShop(ctx context.Context, shopID uint64) ([]model.ReviewEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listReviewsByShop, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]model.ReviewEntity, 0)
	for rows.Next() {
		var entity model.ReviewEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		reviews = append(reviews, entity)
	}
	return reviews, rows.Err()
}
