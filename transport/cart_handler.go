package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	validatorx "github.com/farhanadi/shopfront/utils/validator"
)

// cartID reads the cart cookie, minting a new id (and setting the cookie)
// on first contact.
func cartID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(constant.CartCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     constant.CartCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
	})
	return id
}

// GetCart handler
// @Summary Cart view
// @Tags Cart
// @Produce json
// @Success 200 {object} model.Cart
// @Failure 503 {object} errors.CustomError
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := cartID(w, r)

	res, err := s.CartApp.GetCart(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add cart item
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} model.Cart
// @Failure 503 {object} errors.CustomError
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := cartID(w, r)

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.AddItem(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
