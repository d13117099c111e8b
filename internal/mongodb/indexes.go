package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAllIndexes creates all indexes for the restaurants and reviews collections
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateRestaurantIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create restaurant indexes: %w", err)
	}

	if err := CreateReviewIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}

	return nil
}

// CreateRestaurantIndexes creates the indexes backing the restaurant
// search filters and both sort orders
func CreateRestaurantIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(RestaurantsCollection)

	indexes := []struct {
		name  string
		model mongo.IndexModel
	}{
		{
			name: "category_avgRating",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "avgRating", Value: -1}},
				Options: options.Index().SetName("category_avgRating"),
			},
		},
		{
			name: "city_avgRating",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "city", Value: 1}, {Key: "avgRating", Value: -1}},
				Options: options.Index().SetName("city_avgRating"),
			},
		},
		{
			name: "price_avgRating",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "price", Value: 1}, {Key: "avgRating", Value: -1}},
				Options: options.Index().SetName("price_avgRating"),
			},
		},
		{
			name: "numRatings_desc",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "numRatings", Value: -1}},
				Options: options.Index().SetName("numRatings_desc"),
			},
		},
	}

	for _, idx := range indexes {
		if err := createIndexIfNotExists(ctx, coll, idx.model, idx.name, reset); err != nil {
			return err
		}
	}

	return nil
}

// CreateReviewIndexes creates the index backing the newest-first review
// listing per restaurant
func CreateReviewIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(ReviewsCollection)
	reviewsIndexName := "restaurantId_timestamp"

	reviewsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "restaurantId", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index().
			SetName(reviewsIndexName),
	}

	return createIndexIfNotExists(ctx, coll, reviewsIndex, reviewsIndexName, reset)
}

// DeleteAllIndexes deletes all indexes from all collections in the database
// (except the default _id_ index which cannot be deleted)
func DeleteAllIndexes(ctx context.Context, db *mongo.Database) error {
	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collName := range collections {
		coll := db.Collection(collName)

		cursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list indexes for collection '%s': %w", collName, err)
		}

		for cursor.Next(ctx) {
			var index bson.M
			if err := cursor.Decode(&index); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to decode index for collection '%s': %w", collName, err)
			}

			indexName, ok := index["name"].(string)
			if !ok {
				continue
			}

			// Skip the default _id_ index as it cannot be deleted
			if indexName == "_id_" {
				continue
			}

			_, err := coll.Indexes().DropOne(ctx, indexName)
			if err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to delete index '%s' from collection '%s': %w", indexName, collName, err)
			}
			fmt.Printf("🗑️  Deleted index '%s' from collection '%s'\n", indexName, collName)
		}

		if err := cursor.Err(); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("cursor error for collection '%s': %w", collName, err)
		}
		cursor.Close(ctx)
	}

	return nil
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("ℹ️  Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		_, err := coll.Indexes().DropOne(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("🗑️  Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("✅ Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
