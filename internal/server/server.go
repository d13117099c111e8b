package server

import (
	"log"
	"net/http"

	"github.com/lealre/friendlyeats-backend/internal/api"
	"github.com/lealre/friendlyeats-backend/internal/config"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
)

func NewServer(db *mongodb.DB, cfg config.Config) http.Handler {
	apiHandler := api.NewAPI(db)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", api.RootHandler)
	mux.HandleFunc("GET /restaurants", apiHandler.GetRestaurants)
	mux.HandleFunc("GET /restaurants/watch", apiHandler.WatchRestaurants)
	mux.HandleFunc("GET /restaurants/{id}", apiHandler.GetRestaurantById)
	mux.HandleFunc("GET /restaurants/{id}/reviews", apiHandler.GetRestaurantReviews)
	mux.HandleFunc("GET /restaurants/{id}/reviews/watch", apiHandler.WatchRestaurantReviews)
	mux.HandleFunc("POST /restaurants/{id}/reviews", apiHandler.AddReview)
	mux.HandleFunc("POST /restaurants/{id}/image", apiHandler.UploadRestaurantImage)
	mux.HandleFunc("GET /images/{id}", apiHandler.GetImage)

	handler := AuthMiddleware(cfg.TokenSecret)(mux)
	return RequestIdMiddleware(handler)
}

func ListenAndServe(db *mongodb.DB, cfg config.Config) error {
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewServer(db, cfg),
	}

	log.Printf("Server is running on %s", cfg.Addr)
	return server.ListenAndServe()
}
