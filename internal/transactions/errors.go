package transactions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/account-lab/internal/accounts"
)

// Domain errors for transaction operations.
var (
	ErrNotFound           = errors.New("transaction not found")
	ErrAccountNotFound    = errors.New("the account does not exist")
	ErrInvalidDestination = errors.New("invalid destination_id value")
	ErrInvalidAmount      = errors.New("invalid amount value")
	ErrInvalidParameters  = errors.New("the transaction parameters are not correct")
	ErrInvalidType        = errors.New("the transaction type is not correct")
	ErrInvalidStart       = errors.New("the start transaction value is not correct")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, accounts.ErrInvalidKey),
		errors.Is(err, ErrInvalidDestination),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidParameters),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidStart):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
