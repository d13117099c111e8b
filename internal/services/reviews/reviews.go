package reviews

import (
	"context"

	"github.com/lealre/friendlyeats-backend/internal/mongodb"
)

/*
AddReview validates the submission and hands it to the transactional
write path, which persists the review and folds its rating into the
restaurant's running statistics as one atomic commit.

Validation failures and transaction failures both propagate to the
caller; nothing on this path is swallowed. A restaurant id that does not
resolve surfaces as mongodb.ErrRecordNotFound.
*/
func AddReview(db *mongodb.DB, ctx context.Context, restaurantId, userId string, req NewReview) (Review, error) {
	if restaurantId == "" {
		return Review{}, ErrMissingRestaurantId
	}
	if req.Rating == "" && req.Text == "" {
		return Review{}, ErrEmptyReview
	}

	rating, err := req.Rating.Float64()
	if err != nil {
		return Review{}, ErrInvalidRating
	}
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}

	dbReview, err := db.AddReviewWithStats(ctx, restaurantId, mongodb.ReviewDb{
		UserId: userId,
		Rating: rating,
		Text:   req.Text,
	})
	if err != nil {
		return Review{}, err
	}

	return MapDbReviewToApiReview(dbReview), nil
}

// GetReviewsByRestaurantId returns a restaurant's reviews, newest first.
// An empty slice means the restaurant has no reviews; whether the
// restaurant itself exists is the caller's question to ask.
func GetReviewsByRestaurantId(db *mongodb.DB, ctx context.Context, restaurantId string) ([]Review, error) {
	if restaurantId == "" {
		return nil, ErrMissingRestaurantId
	}

	dbReviews, err := db.GetReviewsByRestaurantId(ctx, restaurantId)
	if err != nil {
		return nil, err
	}

	return mapDbReviewsToApiReviews(dbReviews), nil
}
