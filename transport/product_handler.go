package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	validatorx "github.com/farhanadi/shopfront/utils/validator"
)

func productID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// CreateProduct handler
// @Summary Create product
// @Description Create a product under a shop; names are unique per shop
// @Tags Product
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 200 {object} model.ProductEntity
// @Failure 409 {object} errors.CustomError
// @Router /shops/{slug}/products/create [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, slug, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Description Product with its categories
// @Tags Product
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path int true "Product id"
// @Success 200 {object} model.ProductDetailResponse
// @Failure 404 {object} errors.CustomError
// @Router /shops/{slug}/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productID(r)
	if err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetProduct(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Description Replace name, price, description and image; shop and categories stay as they are
// @Tags Product
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path int true "Product id"
// @Param request body model.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} errors.CustomError
// @Router /shops/{slug}/products/{id}/update [post]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productID(r)
	if err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateProduct(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Description Delete a product; its category links cascade
// @Tags Product
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path int true "Product id"
// @Success 200 {object} responseBody
// @Router /shops/{slug}/products/{id}/delete [post]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := productID(r)
	if err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.DeleteProduct(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListShopCategoryProducts handler
// @Summary Products by shop and category
// @Description Products of a shop that belong to the named category
// @Tags Product
// @Produce json
// @Param slug path string true "Shop slug"
// @Param category path string true "Category name"
// @Success 200 {array} model.ProductEntity
// @Failure 404 {object} errors.CustomError
// @Router /shops/{slug}/{category} [get]
func (s *RestHandler) ListShopCategoryProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	res, err := s.ProductApp.ListByShopCategory(ctx, vars["slug"], vars["category"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
