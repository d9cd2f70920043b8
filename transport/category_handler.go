package transport

import (
	"encoding/json"
	"net/http"

	"github.com/farhanadi/shopfront/constant"
	"github.com/farhanadi/shopfront/model"
	cerr "github.com/farhanadi/shopfront/utils/errors"
	validatorx "github.com/farhanadi/shopfront/utils/validator"
)

// CreateCategory handler
// @Summary Create category
// @Description Create a new category; the name must be unique
// @Tags Category
// @Accept json
// @Produce json
// @Param request body model.CreateCategoryRequest true "Create Category Request"
// @Success 200 {object} model.CategoryEntity
// @Failure 409 {object} errors.CustomError
// @Router /categories/create [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CategoryApp.CreateCategory(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.CategoryApp.ListCategories(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
