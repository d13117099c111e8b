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

// ReviewDb is the persisted review document. Reviews are immutable once
// written; there is no update or delete path.
type ReviewDb struct {
	Id           string    `json:"id" bson:"_id"`
	RestaurantId string    `json:"restaurantId" bson:"restaurantId"`
	UserId       string    `json:"userId" bson:"userId"`
	Rating       float64   `json:"rating" bson:"rating"`
	Text         string    `json:"text" bson:"text"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
}

// restaurantStats is the statistics snapshot read inside the review
// transaction. Fields absent from the document decode to zero, which is
// exactly the base value the first review must fold into.
type restaurantStats struct {
	NumRatings int     `bson:"numRatings"`
	SumRating  float64 `bson:"sumRating"`
}

// foldRating folds one more rating into a running (count, sum) pair and
// returns the new count, sum and average.
func foldRating(numRatings int, sumRating, rating float64) (int, float64, float64) {
	newNumRatings := numRatings + 1
	newSumRating := sumRating + rating
	return newNumRatings, newSumRating, newSumRating / float64(newNumRatings)
}

// ----- Methods for the database -----

/*
AddReviewWithStats inserts a review and folds its rating into the parent
restaurant's running statistics, both inside a single transaction.

The statistics snapshot is read through the session context, so two
reviews committed concurrently against the same restaurant cannot lose
each other's contribution: the driver aborts and re-runs the losing
transaction, and the re-run reads the updated snapshot. No reader ever
observes the new review without the updated statistics or vice versa.

Returns ErrRecordNotFound when the restaurant does not exist.
*/
func (db *DB) AddReviewWithStats(ctx context.Context, restaurantId string, review ReviewDb) (ReviewDb, error) {
	review.Id = primitive.NewObjectID().Hex()
	review.RestaurantId = restaurantId

	err := db.RunAtomic(ctx, func(sc mongo.SessionContext) error {
		restaurants := db.Collection(RestaurantsCollection)
		reviews := db.Collection(ReviewsCollection)

		var stats restaurantStats
		if err := restaurants.FindOne(sc, bson.M{"_id": restaurantId}).Decode(&stats); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrRecordNotFound
			}
			return err
		}

		newNumRatings, newSumRating, newAvgRating := foldRating(stats.NumRatings, stats.SumRating, review.Rating)

		update := bson.M{"$set": bson.M{
			"numRatings":       newNumRatings,
			"sumRating":        newSumRating,
			"avgRating":        newAvgRating,
			"lastReviewUserId": review.UserId,
		}}
		if _, err := restaurants.UpdateOne(sc, bson.M{"_id": restaurantId}, update); err != nil {
			return err
		}

		review.Timestamp = time.Now().UTC()
		_, err := reviews.InsertOne(sc, review)
		return err
	})
	if err != nil {
		return ReviewDb{}, err
	}

	return review, nil
}

// GetReviewsByRestaurantId returns a restaurant's reviews, newest first.
func (db *DB) GetReviewsByRestaurantId(ctx context.Context, restaurantId string) ([]ReviewDb, error) {
	coll := db.Collection(ReviewsCollection)

	filter := bson.M{"restaurantId": restaurantId}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return []ReviewDb{}, err
	}
	defer cursor.Close(ctx)

	var reviewsDb []ReviewDb
	if err := cursor.All(ctx, &reviewsDb); err != nil {
		return []ReviewDb{}, err
	}

	return reviewsDb, nil
}
