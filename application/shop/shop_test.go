package shop_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"

	appshop "github.com/farhanadi/shopfront/application/shop"
	"github.com/farhanadi/shopfront/constant"
	categorymocks "github.com/farhanadi/shopfront/mocks/repository/category"
	productmocks "github.com/farhanadi/shopfront/mocks/repository/product"
	reviewmocks "github.com/farhanadi/shopfront/mocks/repository/review"
	shopmocks "github.com/farhanadi/shopfront/mocks/repository/shop"
	"github.com/farhanadi/shopfront/model"
	shoprepo "github.com/farhanadi/shopfront/repository/shop"
	cerr "github.com/farhanadi/shopfront/utils/errors"
)

type shopFields struct {
	shopRepo     *shopmocks.ShopRepository
	productRepo  *productmocks.ProductRepository
	categoryRepo *categorymocks.CategoryRepository
	reviewRepo   *reviewmocks.ReviewRepository
}

func newShopFields(t *testing.T) shopFields {
	return shopFields{
		shopRepo:     shopmocks.NewShopRepository(t),
		productRepo:  productmocks.NewProductRepository(t),
		categoryRepo: categorymocks.NewCategoryRepository(t),
		reviewRepo:   reviewmocks.NewReviewRepository(t),
	}
}

func newShopApp(f shopFields) appshop.ShopApp {
	return appshop.NewShopApp(f.shopRepo, f.productRepo, f.categoryRepo, f.reviewRepo)
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestShopApp_CreateShop(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateShopRequest
		mockCall func(f shopFields)
		want     *model.ShopEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create shop returns entity with generated id",
			req:  &model.CreateShopRequest{Name: "Book Nook", Slug: "book-nook"},
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Create", mock.Anything, "Book Nook", "book-nook", "").
					Return(&model.ShopEntity{ID: 7, Name: "Book Nook", Slug: "book-nook"}, nil).
					Once()
			},
			want: &model.ShopEntity{ID: 7, Name: "Book Nook", Slug: "book-nook"},
		},
		{
			name: "error: duplicate name or slug",
			req:  &model.CreateShopRequest{Name: "Book Nook", Slug: "book-nook"},
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Create", mock.Anything, "Book Nook", "book-nook", "").
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'book-nook' for key 'uq_shops_slug'"}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrShopExists,
		},
		{
			name: "error: repository failure",
			req:  &model.CreateShopRequest{Name: "Book Nook", Slug: "book-nook"},
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Create", mock.Anything, "Book Nook", "book-nook", "").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newShopFields(t)
			tt.mockCall(f)

			got, err := newShopApp(f).CreateShop(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateShop() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateShop() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_GetShop(t *testing.T) {
	tests := []struct {
		name     string
		filter   *model.ShopFilter
		mockCall func(f shopFields)
		want     *model.ShopEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: get by slug",
			filter: &model.ShopFilter{Slug: "book-nook"},
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).
					Return(&model.ShopEntity{ID: 7, Name: "Book Nook", Slug: "book-nook"}, nil).
					Once()
			},
			want: &model.ShopEntity{ID: 7, Name: "Book Nook", Slug: "book-nook"},
		},
		{
			name:   "error: absent slug maps to not found, never panics",
			filter: &model.ShopFilter{Slug: "missing"},
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Get", mock.Anything, &model.ShopFilter{Slug: "missing"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: neither id nor slug supplied",
			filter: &model.ShopFilter{},
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Get", mock.Anything, &model.ShopFilter{}).
					Return(nil, shoprepo.ErrMissingIdentifier).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newShopFields(t)
			tt.mockCall(f)

			got, err := newShopApp(f).GetShop(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetShop() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetShop() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShopApp_GetShopDetail(t *testing.T) {
	f := newShopFields(t)

	shop := &model.ShopEntity{ID: 7, Name: "Book Nook", Slug: "book-nook"}
	products := []model.ProductEntity{
		{ID: 1, Name: "Widget", Price: 9.99, ShopID: 7},
		{ID: 2, Name: "Gadget", Price: 19.99, ShopID: 7},
	}
	// ListByShop is contractually deduplicated and ordered by name.
	categories := []model.CategoryEntity{
		{ID: 3, Name: "Accessories"},
		{ID: 1, Name: "Tools"},
	}
	reviews := []model.ReviewEntity{
		{ID: 1, Username: "bob", Text: "great shop", ShopID: 7},
	}

	f.shopRepo.On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).Return(shop, nil).Once()
	f.productRepo.On("ListByShop", mock.Anything, uint64(7)).Return(products, nil).Once()
	f.categoryRepo.On("ListByShop", mock.Anything, uint64(7)).Return(categories, nil).Once()
	f.reviewRepo.On("ListByShop", mock.Anything, uint64(7)).Return(reviews, nil).Once()

	got, err := newShopApp(f).GetShopDetail(context.Background(), "book-nook")
	if err != nil {
		t.Fatalf("GetShopDetail() error = %v", err)
	}
	if !reflect.DeepEqual(got.Shop, shop) ||
		!reflect.DeepEqual(got.Products, products) ||
		!reflect.DeepEqual(got.Categories, categories) ||
		!reflect.DeepEqual(got.Reviews, reviews) {
		t.Fatalf("GetShopDetail() = %+v", got)
	}
}

func TestShopApp_DeleteShop(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		mockCall func(f shopFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: delete resolves slug then removes by id",
			slug: "book-nook",
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).
					Return(&model.ShopEntity{ID: 7, Slug: "book-nook"}, nil).
					Once()
				f.shopRepo.
					On("Delete", mock.Anything, uint64(7)).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: unknown slug",
			slug: "missing",
			mockCall: func(f shopFields) {
				f.shopRepo.
					On("Get", mock.Anything, &model.ShopFilter{Slug: "missing"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newShopFields(t)
			tt.mockCall(f)

			err := newShopApp(f).DeleteShop(context.Background(), tt.slug)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteShop() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
