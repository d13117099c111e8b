package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

// RestaurantDb is the persisted restaurant document. NumRatings,
// SumRating and AvgRating are only ever written by AddReviewWithStats,
// so avgRating*numRatings == sumRating holds at all times (modulo
// floating-point rounding).
type RestaurantDb struct {
	Id               string    `json:"id" bson:"_id"`
	Name             string    `json:"name" bson:"name"`
	City             string    `json:"city" bson:"city"`
	Category         string    `json:"category" bson:"category"`
	Price            int       `json:"price" bson:"price"`
	Photo            string    `json:"photo,omitempty" bson:"photo,omitempty"`
	NumRatings       int       `json:"numRatings" bson:"numRatings"`
	SumRating        float64   `json:"sumRating" bson:"sumRating"`
	AvgRating        float64   `json:"avgRating" bson:"avgRating"`
	LastReviewUserId string    `json:"lastReviewUserId,omitempty" bson:"lastReviewUserId,omitempty"`
	Timestamp        time.Time `json:"timestamp" bson:"timestamp"`
}

// ----- Methods for the database -----

func (db *DB) AddRestaurant(ctx context.Context, restaurant RestaurantDb) (RestaurantDb, error) {
	coll := db.Collection(RestaurantsCollection)

	if restaurant.Id == "" {
		restaurant.Id = primitive.NewObjectID().Hex()
	}
	if restaurant.Timestamp.IsZero() {
		restaurant.Timestamp = time.Now().UTC()
	}

	_, err := coll.InsertOne(ctx, restaurant)
	if err != nil {
		return RestaurantDb{}, err
	}

	return restaurant, nil
}

func (db *DB) GetRestaurantById(ctx context.Context, id string) (RestaurantDb, error) {
	coll := db.Collection(RestaurantsCollection)

	var restaurantDb RestaurantDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurantDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RestaurantDb{}, ErrRecordNotFound
		}
		return RestaurantDb{}, err
	}

	return restaurantDb, nil
}

func (db *DB) GetRestaurants(ctx context.Context, args ...any) ([]RestaurantDb, error) {
	coll := db.Collection(RestaurantsCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var allRestaurants []RestaurantDb
	if err := cursor.All(ctx, &allRestaurants); err != nil {
		return []RestaurantDb{}, err
	}

	return allRestaurants, nil
}

func (db *DB) CountRestaurants(ctx context.Context, args ...any) (int, error) {
	coll := db.Collection(RestaurantsCollection)

	filter, _ := ResolveFilterAndOptionsSearch(args...)
	totalRestaurants, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(totalRestaurants), nil
}

func (db *DB) RestaurantExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(RestaurantsCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateRestaurantPhoto patches only the photo URL on a restaurant.
func (db *DB) UpdateRestaurantPhoto(ctx context.Context, id, photoURL string) error {
	coll := db.Collection(RestaurantsCollection)

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"photo": photoURL}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
