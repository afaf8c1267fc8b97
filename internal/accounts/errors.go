package accounts

import (
	"errors"
	"net/http"
)

// Domain errors for account operations.
var (
	ErrNotFound      = errors.New("the record does not exist")
	ErrDuplicate     = errors.New("the account already exists")
	ErrInvalidKey    = errors.New("the account key is not correct")
	ErrInvalidAmount = errors.New("invalid balance total value")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidKey), errors.Is(err, ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
