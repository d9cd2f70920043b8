package shop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/farhanadi/shopfront/model"
	shoprepo "github.com/farhanadi/shopfront/repository/shop"
)

// An empty filter must be rejected before any statement reaches the
// database, so a nil connection is safe here.
func TestSQL_Get_MissingIdentifier(t *testing.T) {
	repo := shoprepo.NewShopRepository(nil)

	tests := []struct {
		name   string
		filter *model.ShopFilter
	}{
		{name: "nil filter", filter: nil},
		{name: "zero-value filter", filter: &model.ShopFilter{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Get(context.Background(), tt.filter)
			if !errors.Is(err, shoprepo.ErrMissingIdentifier) {
				t.Fatalf("Get() error = %v, want ErrMissingIdentifier", err)
			}
			if got != nil {
				t.Fatalf("Get() = %+v, want nil", got)
			}
		})
	}
}
