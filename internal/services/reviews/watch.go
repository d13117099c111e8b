package reviews

import (
	"context"
	"sync"

	"github.com/lealre/friendlyeats-backend/internal/mongodb"
)

// WatchReviews delivers live snapshots of a restaurant's review list,
// newest first: the current snapshot on registration, then a fresh one
// after every review committed for that restaurant. Cancellation
// semantics match restaurants.WatchRestaurants: the cancel func is
// idempotent and no snapshot is delivered after it returns.
func WatchReviews(db *mongodb.DB, ctx context.Context, restaurantId string) (<-chan []Review, func(), error) {
	if restaurantId == "" {
		return nil, nil, ErrMissingRestaurantId
	}

	streamCtx, stopStream := context.WithCancel(ctx)
	cs, err := db.WatchReviewsByRestaurantId(streamCtx, restaurantId)
	if err != nil {
		stopStream()
		return nil, nil, err
	}

	snapshots := make(chan []Review)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(snapshots)

		events := mongodb.StreamEvents(streamCtx, cs)
		for {
			if dbReviews, err := db.GetReviewsByRestaurantId(streamCtx, restaurantId); err == nil {
				select {
				case snapshots <- mapDbReviewsToApiReviews(dbReviews):
				case <-streamCtx.Done():
					return
				}
			}

			select {
			case _, ok := <-events:
				if !ok {
					return
				}
			case <-streamCtx.Done():
				return
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			stopStream()
			<-done
		})
	}

	return snapshots, cancel, nil
}
