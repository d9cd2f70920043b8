package category_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"

	appcategory "github.com/farhanadi/shopfront/application/category"
	"github.com/farhanadi/shopfront/constant"
	categorymocks "github.com/farhanadi/shopfront/mocks/repository/category"
	"github.com/farhanadi/shopfront/model"
	categoryrepo "github.com/farhanadi/shopfront/repository/category"
	cerr "github.com/farhanadi/shopfront/utils/errors"
)

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

func TestCategoryApp_CreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateCategoryRequest
		mockCall func(m *categorymocks.CategoryRepository)
		want     *model.CategoryEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create category",
			req:  &model.CreateCategoryRequest{Name: "Tools", Image: "tools.png"},
			mockCall: func(m *categorymocks.CategoryRepository) {
				m.
					On("Create", mock.Anything, "Tools", "tools.png").
					Return(&model.CategoryEntity{ID: 2, Name: "Tools", Image: "tools.png"}, nil).
					Once()
			},
			want: &model.CategoryEntity{ID: 2, Name: "Tools", Image: "tools.png"},
		},
		{
			name: "error: duplicate category name",
			req:  &model.CreateCategoryRequest{Name: "Tools"},
			mockCall: func(m *categorymocks.CategoryRepository) {
				m.
					On("Create", mock.Anything, "Tools", "").
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Tools' for key 'uq_categories_name'"}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCategoryExists,
		},
		{
			name: "error: repository failure",
			req:  &model.CreateCategoryRequest{Name: "Tools"},
			mockCall: func(m *categorymocks.CategoryRepository) {
				m.
					On("Create", mock.Anything, "Tools", "").
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
			m := categorymocks.NewCategoryRepository(t)
			tt.mockCall(m)

			got, err := appcategory.NewCategoryApp(m).CreateCategory(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateCategory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateCategory() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCategoryApp_GetCategory(t *testing.T) {
	tests := []struct {
		name     string
		filter   *model.CategoryFilter
		mockCall func(m *categorymocks.CategoryRepository)
		want     *model.CategoryEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: get by name",
			filter: &model.CategoryFilter{Name: "Tools"},
			mockCall: func(m *categorymocks.CategoryRepository) {
				m.
					On("Get", mock.Anything, &model.CategoryFilter{Name: "Tools"}).
					Return(&model.CategoryEntity{ID: 2, Name: "Tools"}, nil).
					Once()
			},
			want: &model.CategoryEntity{ID: 2, Name: "Tools"},
		},
		{
			name:   "error: not found",
			filter: &model.CategoryFilter{Name: "Nonsense"},
			mockCall: func(m *categorymocks.CategoryRepository) {
				m.
					On("Get", mock.Anything, &model.CategoryFilter{Name: "Nonsense"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: empty filter rejected before any query",
			filter: &model.CategoryFilter{},
			mockCall: func(m *categorymocks.CategoryRepository) {
				m.
					On("Get", mock.Anything, &model.CategoryFilter{}).
					Return(nil, categoryrepo.ErrMissingIdentifier).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := categorymocks.NewCategoryRepository(t)
			tt.mockCall(m)

			got, err := appcategory.NewCategoryApp(m).GetCategory(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCategory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetCategory() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCategoryApp_ListCategories(t *testing.T) {
	m := categorymocks.NewCategoryRepository(t)
	want := []model.CategoryEntity{
		{ID: 3, Name: "Accessories"},
		{ID: 2, Name: "Tools"},
	}
	m.On("List", mock.Anything).Return(want, nil).Once()

	got, err := appcategory.NewCategoryApp(m).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListCategories() = %+v, want %+v", got, want)
	}
}
