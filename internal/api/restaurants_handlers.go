package api

import (
	"fmt"
	"net/http"

	"github.com/lealre/friendlyeats-backend/internal/generics"
	"github.com/lealre/friendlyeats-backend/internal/logx"
	"github.com/lealre/friendlyeats-backend/internal/services/restaurants"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "FriendlyEats",
	})
}

// GetRestaurants lists restaurants matching the optional search filters,
// for example: /restaurants?city=London&category=Indian&sort=Review
func (api *API) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	criteria := restaurants.SearchCriteria{
		Category: query.Get("category"),
		City:     query.Get("city"),
		Price:    query.Get("price"),
		Sort:     query.Get("sort"),
	}
	page := generics.StringToInt(query.Get("page"))
	size := generics.StringToInt(query.Get("size"))

	result, err := restaurants.ListRestaurants(api.Db, r.Context(), criteria, page, size)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(restaurants.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while listing restaurants")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (api *API) GetRestaurantById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	restaurantId := r.PathValue("id")

	restaurant, err := restaurants.GetRestaurantById(api.Db, r.Context(), restaurantId)
	if err != nil {
		if err == restaurants.ErrRestaurantNotFound {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Restaurant with id %s not found", restaurantId))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting restaurant")
		return
	}

	respondWithJSON(w, http.StatusOK, restaurant)
}
