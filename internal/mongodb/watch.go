package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WatchRestaurants opens a change stream over the restaurants collection.
// Transaction commits surface here only after they are fully applied, so
// a review and its statistics update are never observed half-done.
func (db *DB) WatchRestaurants(ctx context.Context) (*mongo.ChangeStream, error) {
	coll := db.Collection(RestaurantsCollection)
	return coll.Watch(ctx, mongo.Pipeline{}, options.ChangeStream().SetFullDocument(options.UpdateLookup))
}

// WatchReviewsByRestaurantId opens a change stream over the reviews
// collection, narrowed to events for a single restaurant.
func (db *DB) WatchReviewsByRestaurantId(ctx context.Context, restaurantId string) (*mongo.ChangeStream, error) {
	coll := db.Collection(ReviewsCollection)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"fullDocument.restaurantId": restaurantId}}},
	}
	return coll.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
}

// StreamEvents forwards one signal per change-stream event until the
// stream ends or ctx is cancelled, then closes the returned channel and
// the stream. Events arriving while the consumer is busy queue up in the
// stream's cursor, so none are dropped.
func StreamEvents(ctx context.Context, cs *mongo.ChangeStream) <-chan struct{} {
	events := make(chan struct{})

	go func() {
		defer close(events)
		defer cs.Close(context.Background())

		for cs.Next(ctx) {
			select {
			case events <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}
