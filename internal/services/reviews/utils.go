package reviews

import (
	"errors"
	"net/http"
)

var (
	ErrMissingRestaurantId = errors.New("no restaurant id has been provided")
	ErrEmptyReview         = errors.New("a valid review has not been provided")
	ErrInvalidRating       = errors.New("rating must be a number between 1 and 5")
)

var ErrorMap = map[error]int{
	ErrMissingRestaurantId: http.StatusBadRequest,
	ErrEmptyReview:         http.StatusBadRequest,
	ErrInvalidRating:       http.StatusBadRequest,
}
