package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lealre/friendlyeats-backend/internal/generics"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/services/restaurants"
)

// mixedRestaurants returns a seed set spanning cities, categories, price
// tiers and rating statistics.
func mixedRestaurants() []mongodb.RestaurantDb {
	return []mongodb.RestaurantDb{
		{Name: "Spice Route", City: "London", Category: "Indian", Price: 2, NumRatings: 10, SumRating: 45, AvgRating: 4.5},
		{Name: "Curry Leaf", City: "San Francisco", Category: "Indian", Price: 2, NumRatings: 40, SumRating: 140, AvgRating: 3.5},
		{Name: "Trattoria Nonna", City: "London", Category: "Italian", Price: 3, NumRatings: 25, SumRating: 100, AvgRating: 4.0},
		{Name: "Taco Verde", City: "Austin", Category: "Mexican", Price: 1, NumRatings: 5, SumRating: 24, AvgRating: 4.8},
		{Name: "Sakura House", City: "San Francisco", Category: "Japanese", Price: 4, NumRatings: 0, SumRating: 0, AvgRating: 0},
	}
}

func listRestaurants(t *testing.T, query string) generics.Page[restaurants.Restaurant] {
	t.Helper()

	resp, err := http.Get(testServer.URL + "/restaurants" + query)
	if err != nil {
		t.Fatalf("failed to list restaurants: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("listing restaurants returned status %d", resp.StatusCode)
	}

	var page generics.Page[restaurants.Restaurant]
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("failed to decode restaurants page: %v", err)
	}

	return page
}

func getRestaurantResponse(t *testing.T, id string) *http.Response {
	t.Helper()

	resp, err := http.Get(testServer.URL + "/restaurants/" + id)
	if err != nil {
		t.Fatalf("failed to get restaurant: %v", err)
	}

	return resp
}

func restaurantNames(page generics.Page[restaurants.Restaurant]) []string {
	names := make([]string, len(page.Content))
	for i, restaurant := range page.Content {
		names[i] = restaurant.Name
	}
	return names
}
