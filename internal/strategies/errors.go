package strategies

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/drinkchain/internal/prompts"
)

// Domain errors for strategy operations.
var (
	ErrNotFound              = errors.New("strategy not found")
	ErrNameRequired          = errors.New("strategy name required")
	ErrPrimaryFactorRequired = errors.New("first priority factor required")
	ErrTooManyFactors        = errors.New("a strategy holds at most 3 factors")
)

// MapHTTPStatus maps strategy domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrPrimaryFactorRequired) ||
		errors.Is(err, ErrTooManyFactors) ||
		errors.Is(err, prompts.ErrInvalidStrategy) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
