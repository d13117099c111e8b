package restaurants

import (
	"errors"
	"net/http"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidSortKey     = errors.New("sort must be either 'Rating' or 'Review'")
	ErrInvalidPriceTier   = errors.New("price must be a token of 1 to 4 dollar signs")
	ErrInvalidImage       = errors.New("a valid image has not been provided")
)

var ErrorMap = map[error]int{
	ErrRestaurantNotFound: http.StatusNotFound,
	ErrInvalidSortKey:     http.StatusBadRequest,
	ErrInvalidPriceTier:   http.StatusBadRequest,
	ErrInvalidImage:       http.StatusBadRequest,
}
