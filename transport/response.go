package transport

import (
	"encoding/json"
	"net/http"

	"github.com/farhanadi/shopfront/constant"
	cerr "github.com/farhanadi/shopfront/utils/errors"
)

type responseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responseBody{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	if ce, ok := err.(cerr.CustomError); ok {
		w.WriteHeader(ce.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(responseBody{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(responseBody{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}
