package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	validatorx "github.com/farhanadi/shopfront/utils/validator"
)

// Index handler
// @Summary Storefront home
// @Description List every shop
// @Tags Shop
// @Produce json
// @Success 200 {array} model.ShopEntity
// @Router / [get]
func (s *RestHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shops, err := s.ShopApp.ListShops(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, shops)
}

// CreateShop handler
// @Summary Create shop
// @Description Create a new shop; name and slug must be unique
// @Tags Shop
// @Accept json
// @Produce json
// @Param request body model.CreateShopRequest true "Create Shop Request"
// @Success 200 {object} model.ShopEntity
// @Failure 409 {object} errors.CustomError
// @Router /shops/create [post]
func (s *RestHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ShopApp.CreateShop(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetShop handler
// @Summary Shop detail
// @Description Shop with its products, categories and reviews
// @Tags Shop
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} model.ShopDetailResponse
// @Failure 404 {object} errors.CustomError
// @Router /shops/{slug} [get]
func (s *RestHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	res, err := s.ShopApp.GetShopDetail(ctx, slug)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteShop handler
// @Summary Delete shop
// @Description Delete a shop; its products, category links and reviews cascade
// @Tags Shop
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} responseBody
// @Failure 404 {object} errors.CustomError
// @Router /shops/{slug}/delete [post]
func (s *RestHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	if err := s.ShopApp.DeleteShop(ctx, slug); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
