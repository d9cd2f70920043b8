package review

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	reviewRepo "github.com/farhanadi/shopfront/repository/review"
	shopRepo "github.com/farhanadi/shopfront/repository/shop"
	"github.com/farhanadi/shopfront/thirdparty/rabbitmq"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	"github.com/farhanadi/shopfront/utils/logger"
)

// EventPublisher is satisfied by rabbitmq.Publisher. A nil publisher means
// events are skipped; review creation never depends on the broker.
type EventPublisher interface {
	PublishReviewCreated(msg rabbitmq.ReviewCreatedMessage) error
}

type ReviewApp interface {
	CreateReview(ctx context.Context, shopSlug string, req *model.CreateReviewRequest) (*model.ReviewEntity, error)
}

type reviewAppImpl struct {
	reviewRepo reviewRepo.ReviewRepository
	shopRepo   shopRepo.ShopRepository
	publisher  EventPublisher
}

func NewReviewApp(reviewRepo reviewRepo.ReviewRepository, shopRepo shopRepo.ShopRepository, publisher EventPublisher) ReviewApp {
	return &reviewAppImpl{
		reviewRepo: reviewRepo,
		shopRepo:   shopRepo,
		publisher:  publisher,
	}
}

func (s *reviewAppImpl) CreateReview(ctx context.Context, shopSlug string, req *model.CreateReviewRequest) (*model.ReviewEntity, error) {
	shop, err := s.shopRepo.Get(ctx, &model.ShopFilter{Slug: shopSlug})
	if err != nil {
		logger.Error("[CreateReview] err shopRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if shop == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	entity, err := s.reviewRepo.Create(ctx, req.Username, req.Text, shop.ID)
	if err != nil {
		logger.Error("[CreateReview] err reviewRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.ReviewCreatedMessage{
			ReviewID:  entity.ID,
			ShopID:    entity.ShopID,
			Username:  entity.Username,
			CreatedAt: time.Now(),
		}
		if err := s.publisher.PublishReviewCreated(msg); err != nil {
			// The review row is already committed; the event is best effort.
			logger.Warn("[CreateReview] err publisher.PublishReviewCreated", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}
