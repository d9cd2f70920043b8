package category

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	categoryRepo "github.com/farhanadi/shopfront/repository/category"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	"github.com/farhanadi/shopfront/utils/logger"
	"github.com/farhanadi/shopfront/utils/sqlerr"
)

type CategoryApp interface {
	CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryEntity, error)
	GetCategory(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error)
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
}

type categoryAppImpl struct {
	categoryRepo categoryRepo.CategoryRepository
}

func NewCategoryApp(categoryRepo categoryRepo.CategoryRepository) CategoryApp {
	return &categoryAppImpl{categoryRepo: categoryRepo}
}

func (s *categoryAppImpl) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryEntity, error) {
	entity, err := s.categoryRepo.Create(ctx, req.Name, req.Image)
	if err != nil {
		if sqlerr.IsDuplicate(err) {
			return nil, cerr.SetCustomError(constant.ErrCategoryExists)
		}
		logger.Error("[CreateCategory] err categoryRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *categoryAppImpl) GetCategory(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error) {
	entity, err := s.categoryRepo.Get(ctx, filter)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrMissingIdentifier) {
			return nil, cerr.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Error("[GetCategory] err categoryRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *categoryAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] err categoryRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}
