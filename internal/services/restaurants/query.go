package restaurants

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	SortByRating = "Rating"
	SortByReview = "Review"

	maxPriceTier = 4
)

// SearchCriteria is the sparse set of optional restaurant filters. The
// zero value means "everything, best rated first".
type SearchCriteria struct {
	Category string
	City     string
	Price    string // price tier token, e.g. "$$"
	Sort     string // SortByRating (default) or SortByReview
}

/*
Compose turns the criteria into a Mongo filter and sort clause. Pure and
deterministic: no I/O happens here.

Filters are independent equality matches combined by conjunction, so the
order they are applied in never changes the result set. The sort clause
is always exactly one descending key: avgRating for SortByRating (and
when no sort is given), numRatings for SortByReview. Any other sort key
is rejected rather than silently dropped.
*/
func (c SearchCriteria) Compose() (bson.M, bson.D, error) {
	filter := bson.M{}

	if c.Category != "" {
		filter["category"] = c.Category
	}
	if c.City != "" {
		filter["city"] = c.City
	}
	if c.Price != "" {
		tier, err := PriceTier(c.Price)
		if err != nil {
			return nil, nil, err
		}
		filter["price"] = tier
	}

	var sort bson.D
	switch c.Sort {
	case "", SortByRating:
		sort = bson.D{{Key: "avgRating", Value: -1}}
	case SortByReview:
		sort = bson.D{{Key: "numRatings", Value: -1}}
	default:
		return nil, nil, ErrInvalidSortKey
	}

	return filter, sort, nil
}

// PriceTier derives the ordinal price level (1-4) from a token of
// repeated dollar signs.
func PriceTier(token string) (int, error) {
	if token == "" || len(token) > maxPriceTier {
		return 0, ErrInvalidPriceTier
	}
	if strings.Count(token, "$") != len(token) {
		return 0, ErrInvalidPriceTier
	}
	return len(token), nil
}

// PriceToken is the inverse of PriceTier; out-of-range tiers map to an
// empty token.
func PriceToken(tier int) string {
	if tier < 1 || tier > maxPriceTier {
		return ""
	}
	return strings.Repeat("$", tier)
}
