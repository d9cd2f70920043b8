package shop

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	categoryRepo "github.com/farhanadi/shopfront/repository/category"
	productRepo "github.com/farhanadi/shopfront/repository/product"
	reviewRepo "github.com/farhanadi/shopfront/repository/review"
	shopRepo "github.com/farhanadi/shopfront/repository/shop"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	"github.com/farhanadi/shopfront/utils/logger"
	"github.com/farhanadi/shopfront/utils/sqlerr"
)

type ShopApp interface {
	CreateShop(ctx context.Context, req *model.CreateShopRequest) (*model.ShopEntity, error)
	GetShop(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error)
	GetShopDetail(ctx context.Context, slug string) (*model.ShopDetailResponse, error)
	ListShops(ctx context.Context) ([]model.ShopEntity, error)
	DeleteShop(ctx context.Context, slug string) error
}

type shopAppImpl struct {
	shopRepo     shopRepo.ShopRepository
	productRepo  productRepo.ProductRepository
	categoryRepo categoryRepo.CategoryRepository
	reviewRepo   reviewRepo.ReviewRepository
}

func NewShopApp(
	shopRepo shopRepo.ShopRepository,
	productRepo productRepo.ProductRepository,
	categoryRepo categoryRepo.CategoryRepository,
	reviewRepo reviewRepo.ReviewRepository,
) ShopApp {
	return &shopAppImpl{
		shopRepo:     shopRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *shopAppImpl) CreateShop(ctx context.Context, req *model.CreateShopRequest) (*model.ShopEntity, error) {
	entity, err := s.shopRepo.Create(ctx, req.Name, req.Slug, req.Image)
	if err != nil {
		if sqlerr.IsDuplicate(err) {
			return nil, cerr.SetCustomError(constant.ErrShopExists)
		}
		logger.Error("[CreateShop] err shopRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *shopAppImpl) GetShop(ctx context.Context, filter *model.ShopFilter) (*model.ShopEntity, error) {
	entity, err := s.shopRepo.Get(ctx, filter)
	if err != nil {
		if errors.Is(err, shopRepo.ErrMissingIdentifier) {
			return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Error("[GetShop] err shopRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

// GetShopDetail assembles the shop page: the shop itself, its products, the
// categories those products cover, and its reviews. Every read goes back to
// storage.
func (s *shopAppImpl) GetShopDetail(ctx context.Context, slug string) (*model.ShopDetailResponse, error) {
	shop, err := s.GetShop(ctx, &model.ShopFilter{Slug: slug})
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		logger.Error("[GetShopDetail] err productRepo.ListByShop", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	categories, err := s.categoryRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		logger.Error("[GetShopDetail] err categoryRepo.ListByShop", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	reviews, err := s.reviewRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		logger.Error("[GetShopDetail] err reviewRepo.ListByShop", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.ShopDetailResponse{
		Shop:       shop,
		Products:   products,
		Categories: categories,
		Reviews:    reviews,
	}, nil
}

func (s *shopAppImpl) ListShops(ctx context.Context) ([]model.ShopEntity, error) {
	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		logger.Error("[ListShops] err shopRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return shops, nil
}

// DeleteShop removes the shop; dependent products, category links and
// reviews are removed by the storage engine's cascade rules.
func (s *shopAppImpl) DeleteShop(ctx context.Context, slug string) error {
	shop, err := s.GetShop(ctx, &model.ShopFilter{Slug: slug})
	if err != nil {
		return err
	}

	if err := s.shopRepo.Delete(ctx, shop.ID); err != nil {
		logger.Error("[DeleteShop] err shopRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}
