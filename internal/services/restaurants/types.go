package restaurants

import "time"

// Restaurant is the API-facing shape. Price carries the dollar-sign
// token ("$" to "$$$$") rather than the stored ordinal.
type Restaurant struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Category   string    `json:"category"`
	Price      string    `json:"price"`
	Photo      string    `json:"photo,omitempty"`
	NumRatings int       `json:"numRatings"`
	SumRating  float64   `json:"sumRating"`
	AvgRating  float64   `json:"avgRating"`
	Timestamp  time.Time `json:"timestamp"`
}

type UpdatedPhotoResponse struct {
	Photo string `json:"photo"`
}
