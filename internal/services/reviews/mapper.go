package reviews

import "github.com/lealre/friendlyeats-backend/internal/mongodb"

func MapDbReviewToApiReview(dbReview mongodb.ReviewDb) Review {
	return Review{
		Id:           dbReview.Id,
		RestaurantId: dbReview.RestaurantId,
		UserId:       dbReview.UserId,
		Rating:       dbReview.Rating,
		Text:         dbReview.Text,
		Timestamp:    dbReview.Timestamp,
	}
}

func mapDbReviewsToApiReviews(dbReviews []mongodb.ReviewDb) []Review {
	apiReviews := make([]Review, len(dbReviews))
	for i, dbReview := range dbReviews {
		apiReviews[i] = MapDbReviewToApiReview(dbReview)
	}
	return apiReviews
}
