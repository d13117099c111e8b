package reviews

import (
	"encoding/json"
	"time"
)

type Review struct {
	Id           string    `json:"id"`
	RestaurantId string    `json:"restaurantId"`
	UserId       string    `json:"userId"`
	Rating       float64   `json:"rating"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewReview is the review-submission payload. Rating is a json.Number so
// clients may send it as either a number or a numeric string; it is
// coerced inside AddReview.
type NewReview struct {
	Rating json.Number `json:"rating"`
	Text   string      `json:"text"`
}

type AllReviewsFromRestaurant struct {
	Reviews []Review `json:"reviews"`
}
