package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lealre/friendlyeats-backend/internal/auth"
	"github.com/lealre/friendlyeats-backend/internal/logx"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/services/reviews"
)

func (api *API) GetRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	restaurantId := r.PathValue("id")
	if restaurantId == "" {
		respondWithError(w, http.StatusBadRequest, "Restaurant id is required")
		return
	}

	if ok, err := api.Db.RestaurantExists(r.Context(), restaurantId); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while checking restaurant")
		return
	} else if !ok {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("Restaurant with id %s not found", restaurantId))
		return
	}

	restaurantReviews, err := reviews.GetReviewsByRestaurantId(api.Db, r.Context(), restaurantId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting reviews")
		return
	}

	respondWithJSON(w, http.StatusOK, reviews.AllReviewsFromRestaurant{Reviews: restaurantReviews})
}

func (api *API) AddReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	userId := auth.GetUserIdFromContext(r.Context())

	restaurantId := r.PathValue("id")

	var req reviews.NewReview
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	newReview, err := reviews.AddReview(api.Db, r.Context(), restaurantId, userId, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		if err == mongodb.ErrRecordNotFound {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Restaurant with id %s not found", restaurantId))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	respondWithJSON(w, http.StatusCreated, newReview)
}
