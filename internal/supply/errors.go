package supply

import (
	"errors"
	"net/http"
)

// Domain errors for supply operations.
var (
	ErrInvalidFilter   = errors.New("invalid listing filter")
	ErrInvalidType     = errors.New("listing type must be SUPPLY or DEMAND")
	ErrFieldRequired   = errors.New("required listing field missing")
	ErrInvalidValidity = errors.New("validity days must be within 0..365")
)

// MapHTTPStatus maps supply domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidFilter) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrFieldRequired) ||
		errors.Is(err, ErrInvalidValidity) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
