package api

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/lealre/friendlyeats-backend/internal/logx"
	"github.com/lealre/friendlyeats-backend/internal/services/restaurants"
	"github.com/lealre/friendlyeats-backend/internal/services/reviews"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WatchRestaurants streams the restaurant list matching the query
// filters over a websocket: one JSON message with the current snapshot,
// then one per change, until the client disconnects.
func (api *API) WatchRestaurants(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query()
	criteria := restaurants.SearchCriteria{
		Category: query.Get("category"),
		City:     query.Get("city"),
		Price:    query.Get("price"),
		Sort:     query.Get("sort"),
	}

	ctx, cancelCtx := context.WithCancel(r.Context())
	defer cancelCtx()

	snapshots, cancel, err := restaurants.WatchRestaurants(api.Db, ctx, criteria)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(restaurants.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to watch restaurants")
		return
	}
	defer cancel()

	serveSnapshots(w, r, logger.Printf, cancelCtx, func(conn *websocket.Conn) error {
		for snapshot := range snapshots {
			if err := conn.WriteJSON(snapshot); err != nil {
				return err
			}
		}
		return nil
	})
}

// WatchRestaurantReviews streams a restaurant's review list the same
// way: current snapshot first, then one message per committed review.
func (api *API) WatchRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	restaurantId := r.PathValue("id")

	ctx, cancelCtx := context.WithCancel(r.Context())
	defer cancelCtx()

	snapshots, cancel, err := reviews.WatchReviews(api.Db, ctx, restaurantId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to watch reviews")
		return
	}
	defer cancel()

	serveSnapshots(w, r, logger.Printf, cancelCtx, func(conn *websocket.Conn) error {
		for snapshot := range snapshots {
			if err := conn.WriteJSON(snapshot); err != nil {
				return err
			}
		}
		return nil
	})
}

// serveSnapshots upgrades the connection and runs the write loop. A
// background read loop exists only to notice the client going away,
// since the request context does not fire after a hijack.
func serveSnapshots(w http.ResponseWriter, r *http.Request, logf func(string, ...any), cancelCtx context.CancelFunc, writeLoop func(*websocket.Conn) error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logf("ERROR: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancelCtx()
				return
			}
		}
	}()

	if err := writeLoop(conn); err != nil {
		cancelCtx()
	}
}
