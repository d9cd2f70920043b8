package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	categoryRepo "github.com/farhanadi/shopfront/repository/category"
	productRepo "github.com/farhanadi/shopfront/repository/product"
	shopRepo "github.com/farhanadi/shopfront/repository/shop"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	"github.com/farhanadi/shopfront/utils/logger"
	"github.com/farhanadi/shopfront/utils/sqlerr"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, shopSlug string, req *model.CreateProductRequest) (*model.ProductEntity, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetailResponse, error)
	ListProducts(ctx context.Context) ([]model.ProductEntity, error)
	ListByShopCategory(ctx context.Context, shopSlug, categoryName string) ([]model.ProductEntity, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, id uint64) error
	AddCategory(ctx context.Context, productID, categoryID uint64) error
}

type productAppImpl struct {
	productRepo  productRepo.ProductRepository
	shopRepo     shopRepo.ShopRepository
	categoryRepo categoryRepo.CategoryRepository
}

func NewProductApp(
	productRepo productRepo.ProductRepository,
	shopRepo shopRepo.ShopRepository,
	categoryRepo categoryRepo.CategoryRepository,
) ProductApp {
	return &productAppImpl{
		productRepo:  productRepo,
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, shopSlug string, req *model.CreateProductRequest) (*model.ProductEntity, error) {
	shop, err := s.shopRepo.Get(ctx, &model.ShopFilter{Slug: shopSlug})
	if err != nil {
		logger.Error("[CreateProduct] err shopRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if shop == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	entity, err := s.productRepo.Create(ctx, &model.ProductEntity{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		ShopID:      shop.ID,
	})
	if err != nil {
		// Product names are unique per shop, not globally.
		if sqlerr.IsDuplicate(err) {
			return nil, cerr.SetCustomError(constant.ErrProductExists)
		}
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	for _, categoryID := range req.CategoryIDs {
		if err := s.AddCategory(ctx, entity.ID, categoryID); err != nil {
			return nil, err
		}
	}

	return entity, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetailResponse, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	categories, err := s.categoryRepo.ListByProduct(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] err categoryRepo.ListByProduct", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductDetailResponse{
		Product:    entity,
		Categories: categories,
	}, nil
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.ProductEntity, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] err productRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

func (s *productAppImpl) ListByShopCategory(ctx context.Context, shopSlug, categoryName string) ([]model.ProductEntity, error) {
	shop, err := s.shopRepo.Get(ctx, &model.ShopFilter{Slug: shopSlug})
	if err != nil {
		logger.Error("[ListByShopCategory] err shopRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if shop == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	category, err := s.categoryRepo.Get(ctx, &model.CategoryFilter{Name: categoryName})
	if err != nil {
		logger.Error("[ListByShopCategory] err categoryRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	products, err := s.productRepo.ListByShopCategory(ctx, shop.ID, category.ID)
	if err != nil {
		logger.Error("[ListByShopCategory] err productRepo.ListByShopCategory", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

// UpdateProduct replaces the four mutable fields. The returned entity does
// not carry shop data; the owning shop cannot change through this path.
func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error) {
	entity, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		if sqlerr.IsDuplicate(err) {
			return nil, cerr.SetCustomError(constant.ErrProductExists)
		}
		logger.Error("[UpdateProduct] err productRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *productAppImpl) AddCategory(ctx context.Context, productID, categoryID uint64) error {
	if err := s.productRepo.AddCategory(ctx, productID, categoryID); err != nil {
		switch {
		case sqlerr.IsDuplicate(err):
			return cerr.SetCustomError(constant.ErrCategoryAlreadyLinked)
		case sqlerr.IsForeignKey(err):
			return cerr.SetCustomError(constant.ErrInvalidReference)
		}
		logger.Error("[AddCategory] err productRepo.AddCategory", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}
