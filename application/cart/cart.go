package cart

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	cartRepo "github.com/farhanadi/shopfront/repository/cart"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	"github.com/farhanadi/shopfront/utils/logger"
)

type CartApp interface {
	GetCart(ctx context.Context, cartID string) (*model.Cart, error)
	AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.Cart, error)
}

type cartAppImpl struct {
	cartRepo cartRepo.CartRepository
}

func NewCartApp(cartRepo cartRepo.CartRepository) CartApp {
	return &cartAppImpl{cartRepo: cartRepo}
}

func (s *cartAppImpl) GetCart(ctx context.Context, cartID string) (*model.Cart, error) {
	c, err := s.cartRepo.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrUnavailable) {
			return nil, cerr.SetCustomError(constant.ErrCartUnavailable)
		}
		logger.Error("[GetCart] err cartRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.Cart, error) {
	c, err := s.cartRepo.AddItem(ctx, cartID, model.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, cartRepo.ErrUnavailable) {
			return nil, cerr.SetCustomError(constant.ErrCartUnavailable)
		}
		logger.Error("[AddItem] err cartRepo.AddItem", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return c, nil
}
