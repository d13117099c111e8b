package tests

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

func addReview(t *testing.T, restaurantId, body, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, testServer.URL+"/restaurants/"+restaurantId+"/reviews", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("failed to build review request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to post review: %v", err)
	}

	return resp
}

func getRestaurantDb(t *testing.T, id string) mongodb.RestaurantDb {
	t.Helper()

	restaurant, err := testDb.GetRestaurantById(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to read restaurant %s from db: %v", id, err)
	}

	return restaurant
}

func countReviewsDb(t *testing.T, restaurantId string) int {
	t.Helper()

	coll := testDb.Collection(mongodb.ReviewsCollection)
	count, err := coll.CountDocuments(context.Background(), bson.M{"restaurantId": restaurantId})
	if err != nil {
		t.Fatalf("failed to count reviews: %v", err)
	}

	return int(count)
}
