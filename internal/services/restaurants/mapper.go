package restaurants

import "github.com/lealre/friendlyeats-backend/internal/mongodb"

func MapDbRestaurantToApiRestaurant(dbRestaurant mongodb.RestaurantDb) Restaurant {
	return Restaurant{
		Id:         dbRestaurant.Id,
		Name:       dbRestaurant.Name,
		City:       dbRestaurant.City,
		Category:   dbRestaurant.Category,
		Price:      PriceToken(dbRestaurant.Price),
		Photo:      dbRestaurant.Photo,
		NumRatings: dbRestaurant.NumRatings,
		SumRating:  dbRestaurant.SumRating,
		AvgRating:  dbRestaurant.AvgRating,
		Timestamp:  dbRestaurant.Timestamp,
	}
}

func mapDbRestaurantsToApiRestaurants(dbRestaurants []mongodb.RestaurantDb) []Restaurant {
	apiRestaurants := make([]Restaurant, len(dbRestaurants))
	for i, dbRestaurant := range dbRestaurants {
		apiRestaurants[i] = MapDbRestaurantToApiRestaurant(dbRestaurant)
	}
	return apiRestaurants
}
