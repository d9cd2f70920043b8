package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	redisclient "github.com/farhanadi/shopfront/cmd/redis"
	"github.com/farhanadi/shopfront/model"
)

// ErrUnavailable is returned when no redis client has been configured; the
// rest of the storefront keeps working without carts.
var ErrUnavailable = errors.New("cart: redis client not configured")

// cartTTL keeps abandoned carts from living forever.
const cartTTL = 7 * 24 * time.Hour

// CartRepository stores carts in Redis keyed by a client-held id. Carts
// never touch the relational store.
type CartRepository interface {
	Get(ctx context.Context, cartID string) (*model.Cart, error)
	AddItem(ctx context.Context, cartID string, item model.CartItem) (*model.Cart, error)
}

type repo struct{}

func NewCartRepository() CartRepository {
	return &repo{}
}

func key(cartID string) string {
	return "cart:" + cartID
}

// Get returns the stored cart, or an empty cart when the key is absent or
// expired.
func (r *repo) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, ErrUnavailable
	}

	val, err := client.Get(ctx, key(cartID)).Result()
	if err == redis.Nil {
		return &model.Cart{ID: cartID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var c model.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// AddItem merges the item into the cart (summing quantities for an existing
// product) and rewrites the value with a fresh TTL.
func (r *repo) AddItem(ctx context.Context, cartID string, item model.CartItem) (*model.Cart, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, ErrUnavailable
	}

	c, err := r.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, item)
	}

	body, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	if err := client.Set(ctx, key(cartID), body, cartTTL).Err(); err != nil {
		return nil, err
	}
	return c, nil
}
