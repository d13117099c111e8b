package restaurants

import (
	"context"
	"errors"
	"io"

	"github.com/lealre/friendlyeats-backend/internal/generics"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListRestaurants returns one page of restaurants matching the criteria,
// in the criteria's sort order.
func ListRestaurants(db *mongodb.DB, ctx context.Context, criteria SearchCriteria, page, size int) (generics.Page[Restaurant], error) {
	filter, sort, err := criteria.Compose()
	if err != nil {
		return generics.Page[Restaurant]{}, err
	}

	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	dbRestaurants, err := db.GetRestaurants(ctx, filter, opts)
	if err != nil {
		return generics.Page[Restaurant]{}, err
	}

	totalResults, err := db.CountRestaurants(ctx, filter)
	if err != nil {
		return generics.Page[Restaurant]{}, err
	}

	return generics.NewPage(page, size, totalResults, mapDbRestaurantsToApiRestaurants(dbRestaurants)), nil
}

// GetRestaurantById retrieves a single restaurant. Absence is an
// explicit ErrRestaurantNotFound, never an empty value.
func GetRestaurantById(db *mongodb.DB, ctx context.Context, id string) (Restaurant, error) {
	if id == "" {
		return Restaurant{}, ErrRestaurantNotFound
	}

	dbRestaurant, err := db.GetRestaurantById(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return Restaurant{}, ErrRestaurantNotFound
		}
		return Restaurant{}, err
	}

	return MapDbRestaurantToApiRestaurant(dbRestaurant), nil
}

// UpdateRestaurantImage stores the uploaded image blob and patches the
// restaurant's photo field with its public URL, which it returns.
func UpdateRestaurantImage(db *mongodb.DB, ctx context.Context, restaurantId, filename, contentType string, image io.Reader) (string, error) {
	if restaurantId == "" {
		return "", ErrRestaurantNotFound
	}
	if filename == "" || image == nil {
		return "", ErrInvalidImage
	}

	exists, err := db.RestaurantExists(ctx, restaurantId)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrRestaurantNotFound
	}

	fileId, err := db.StoreImage(restaurantId, filename, contentType, image)
	if err != nil {
		return "", err
	}

	photoURL := "/images/" + fileId
	if err := db.UpdateRestaurantPhoto(ctx, restaurantId, photoURL); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return "", ErrRestaurantNotFound
		}
		return "", err
	}

	return photoURL, nil
}
