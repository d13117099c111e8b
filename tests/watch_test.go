package tests

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/services/restaurants"
	"github.com/lealre/friendlyeats-backend/internal/services/reviews"
	"github.com/stretchr/testify/require"
)

func dialWatch(t *testing.T, path string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(testServer.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", path, err)
	}
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(15 * time.Second))
	return conn
}

func TestWatchRestaurants(t *testing.T) {
	resetDB(t)
	seeded := seedRestaurants(t, []mongodb.RestaurantDb{{Name: "Watched Place", City: "London", Category: "Thai", Price: 2}})
	restaurantId := seeded[0].Id

	conn := dialWatch(t, "/restaurants/watch?city=London")

	// Initial snapshot arrives without any write happening.
	var snapshot []restaurants.Restaurant
	require.NoError(t, conn.ReadJSON(&snapshot))
	require.Len(t, snapshot, 1)
	require.Equal(t, 0, snapshot[0].NumRatings)

	token := makeToken(t, "user-1")
	resp := addReview(t, restaurantId, `{"rating": 5, "text": "watching"}`, token)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The committed review surfaces as a consistent snapshot: count and
	// average always move together.
	deadline := time.Now().Add(10 * time.Second)
	for {
		require.NoError(t, conn.ReadJSON(&snapshot))
		require.Len(t, snapshot, 1)
		if snapshot[0].NumRatings == 1 {
			require.Equal(t, 5.0, snapshot[0].AvgRating)
			require.Equal(t, 5.0, snapshot[0].SumRating)
			break
		}
		require.Equal(t, 0, snapshot[0].NumRatings)
		require.True(t, time.Now().Before(deadline), "timed out waiting for updated snapshot")
	}
}

func TestWatchRestaurantsCancel(t *testing.T) {
	resetDB(t)
	seeded := seedRestaurants(t, []mongodb.RestaurantDb{{Name: "Cancelled Place", City: "London", Category: "Thai", Price: 2}})
	restaurantId := seeded[0].Id

	snapshots, cancel, err := restaurants.WatchRestaurants(testDb, context.Background(), restaurants.SearchCriteria{City: "London"})
	require.NoError(t, err)

	select {
	case snapshot, ok := <-snapshots:
		require.True(t, ok)
		require.Len(t, snapshot, 1)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for the initial snapshot")
	}

	// Land a write so a fresh snapshot is in flight while cancelling.
	writeDone := make(chan error, 1)
	go func() {
		_, err := testDb.AddReviewWithStats(context.Background(), restaurantId, mongodb.ReviewDb{UserId: "user-1", Rating: 5, Text: "racing the cancel"})
		writeDone <- err
	}()

	cancel()
	cancel() // second call must return without blocking or panicking

	// Once cancel has returned the channel is closed and silent: the
	// in-flight snapshot never arrives.
	snapshot, ok := <-snapshots
	require.False(t, ok)
	require.Nil(t, snapshot)

	require.NoError(t, <-writeDone)
}

func TestWatchReviewsCancel(t *testing.T) {
	resetDB(t)
	seeded := seedRestaurants(t, []mongodb.RestaurantDb{{Name: "Quiet Place", City: "Austin", Category: "BBQ", Price: 1}})
	restaurantId := seeded[0].Id

	snapshots, cancel, err := reviews.WatchReviews(testDb, context.Background(), restaurantId)
	require.NoError(t, err)

	select {
	case snapshot, ok := <-snapshots:
		require.True(t, ok)
		require.Empty(t, snapshot)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for the initial snapshot")
	}

	writeDone := make(chan error, 1)
	go func() {
		_, err := testDb.AddReviewWithStats(context.Background(), restaurantId, mongodb.ReviewDb{UserId: "user-2", Rating: 4, Text: "racing the cancel"})
		writeDone <- err
	}()

	cancel()
	cancel()

	snapshot, ok := <-snapshots
	require.False(t, ok)
	require.Nil(t, snapshot)

	require.NoError(t, <-writeDone)
}

func TestWatchRestaurantsRejectsBadCriteria(t *testing.T) {
	resp, err := http.Get(testServer.URL + "/restaurants/watch?sort=Popularity")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWatchRestaurantReviews(t *testing.T) {
	resetDB(t)
	seeded := seedRestaurants(t, []mongodb.RestaurantDb{{Name: "Review Watch", City: "Austin", Category: "BBQ", Price: 1}})
	restaurantId := seeded[0].Id

	conn := dialWatch(t, "/restaurants/"+restaurantId+"/reviews/watch")

	var snapshot []reviews.Review
	require.NoError(t, conn.ReadJSON(&snapshot))
	require.Empty(t, snapshot)

	token := makeToken(t, "user-9")
	resp := addReview(t, restaurantId, `{"rating": 4, "text": "brisket"}`, token)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	deadline := time.Now().Add(10 * time.Second)
	for {
		require.NoError(t, conn.ReadJSON(&snapshot))
		if len(snapshot) == 1 {
			require.Equal(t, "brisket", snapshot[0].Text)
			require.Equal(t, "user-9", snapshot[0].UserId)
			break
		}
		require.True(t, time.Now().Before(deadline), "timed out waiting for review snapshot")
	}
}
