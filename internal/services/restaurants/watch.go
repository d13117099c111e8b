package restaurants

import (
	"context"
	"sync"

	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
WatchRestaurants delivers live snapshots of the restaurant list matching
the criteria: the current snapshot first, then a fresh one after every
change observed on the restaurants collection.

The change stream is opened before the first snapshot is taken, so a
write landing between the two shows up as a follow-up snapshot instead
of being missed. The snapshot channel is unbuffered and is closed when
the watch ends; the returned cancel func is idempotent and blocks until
the delivery goroutine has stopped, so no snapshot is delivered after
cancel returns.
*/
func WatchRestaurants(db *mongodb.DB, ctx context.Context, criteria SearchCriteria) (<-chan []Restaurant, func(), error) {
	filter, sort, err := criteria.Compose()
	if err != nil {
		return nil, nil, err
	}

	streamCtx, stopStream := context.WithCancel(ctx)
	cs, err := db.WatchRestaurants(streamCtx)
	if err != nil {
		stopStream()
		return nil, nil, err
	}

	snapshots := make(chan []Restaurant)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(snapshots)

		events := mongodb.StreamEvents(streamCtx, cs)
		for {
			if snapshot, err := queryRestaurants(db, streamCtx, filter, sort); err == nil {
				select {
				case snapshots <- snapshot:
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

func queryRestaurants(db *mongodb.DB, ctx context.Context, filter bson.M, sort bson.D) ([]Restaurant, error) {
	dbRestaurants, err := db.GetRestaurants(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	return mapDbRestaurantsToApiRestaurants(dbRestaurants), nil
}
