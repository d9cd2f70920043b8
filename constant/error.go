package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrCredentialExists
	ErrInvalidPassword
	ErrShopExists
	ErrCategoryExists
	ErrProductExists
	ErrCategoryAlreadyLinked
	ErrInvalidReference
	ErrCartUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrCredentialExists:      "username or email already exists",
	ErrInvalidPassword:       "password invalid",
	ErrShopExists:            "shop name or slug already exists",
	ErrCategoryExists:        "category name already exists",
	ErrProductExists:         "product name already exists in this shop",
	ErrCategoryAlreadyLinked: "product already belongs to this category",
	ErrInvalidReference:      "referenced data does not exist",
	ErrCartUnavailable:       "cart storage unavailable",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrCredentialExists:      http.StatusConflict,
	ErrInvalidPassword:       http.StatusBadRequest,
	ErrShopExists:            http.StatusConflict,
	ErrCategoryExists:        http.StatusConflict,
	ErrProductExists:         http.StatusConflict,
	ErrCategoryAlreadyLinked: http.StatusConflict,
	ErrInvalidReference:      http.StatusBadRequest,
	ErrCartUnavailable:       http.StatusServiceUnavailable,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrCredentialExists:      "0004",
	ErrInvalidPassword:       "0005",
	ErrShopExists:            "0006",
	ErrCategoryExists:        "0007",
	ErrProductExists:         "0008",
	ErrCategoryAlreadyLinked: "0009",
	ErrInvalidReference:      "0010",
	ErrCartUnavailable:       "0011",
}
