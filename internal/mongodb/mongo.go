package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var ErrRecordNotFound = errors.New("record not found in the database")

func ResolveFilterAndOptionsSearch(args ...any) (bson.M, []*options.FindOptions) {
	filter := bson.M{}
	var opts []*options.FindOptions

	for _, arg := range args {
		switch v := arg.(type) {
		case bson.M:
			filter = v
		case *options.FindOptions:
			opts = append(opts, v)
		default:
			// Just ignore if no args match
		}
	}

	return filter, opts
}

/*
RunAtomic runs fn inside a multi-document transaction with snapshot read
concern and majority write concern. Either every write issued through the
session context commits, or none of them do.

The driver re-runs fn on transient transaction errors (write conflicts
between concurrent transactions included), so fn must be safe to execute
more than once and must re-read any document it bases a write on rather
than reusing a snapshot from a previous attempt. A commit that cannot
complete after the driver's own retries is returned as-is.
*/
func (db *DB) RunAtomic(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := db.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	}, txnOpts)

	return err
}
