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

// CreateReview handler
// @Summary Create shop review
// @Description Leave a review on a shop; the username is free text
// @Tags Review
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param request body model.CreateReviewRequest true "Create Review Request"
// @Success 200 {object} model.ReviewEntity
// @Failure 404 {object} errors.CustomError
// @Router /shops/{slug}/reviews/create [post]
func (s *RestHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	var req model.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, cerr.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReviewApp.CreateReview(ctx, slug, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
