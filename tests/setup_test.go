package tests

import (
	"context"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/lealre/friendlyeats-backend/internal/auth"
	"github.com/lealre/friendlyeats-backend/internal/config"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/server"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	testClient *mongo.Client
	testDb     *mongodb.DB
	testServer *httptest.Server
)

const (
	TEST_DB_NAME      = "testDb"
	TEST_TOKEN_SECRET = "test-token-secret"
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	// Transactions and change streams both need a replica set.
	mongoC, err := tcmongodb.Run(ctx, "mongo:7.0", tcmongodb.WithReplicaSet("rs0"))
	if err != nil {
		log.Fatalf("failed to start mongo container: %v", err)
	}

	uri, err := mongoC.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to get mongo connection string: %v", err)
	}

	testClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to test mongo: %v", err)
	}

	testDb = mongodb.NewDB(testClient, TEST_DB_NAME)

	cfg := config.Config{
		MongoDb:     TEST_DB_NAME,
		TokenSecret: TEST_TOKEN_SECRET,
	}
	handler := server.NewServer(testDb, cfg)
	testServer = httptest.NewServer(handler)

	code := m.Run()

	// Cleanup
	testServer.Close()
	_ = testClient.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)

	collections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	for _, coll := range collections {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			t.Fatalf("failed to drop collection %s: %v", coll, err)
		}
	}
}

func seedRestaurants(t *testing.T, seeds []mongodb.RestaurantDb) []mongodb.RestaurantDb {
	t.Helper()

	ctx := context.Background()
	seeded := make([]mongodb.RestaurantDb, len(seeds))
	for i, seed := range seeds {
		restaurant, err := testDb.AddRestaurant(ctx, seed)
		if err != nil {
			t.Fatalf("failed to seed restaurant %q: %v", seed.Name, err)
		}
		seeded[i] = restaurant
	}

	return seeded
}

func makeToken(t *testing.T, userId string) string {
	t.Helper()

	token, err := auth.MakeJWT(userId, TEST_TOKEN_SECRET, time.Hour)
	if err != nil {
		t.Fatalf("failed to make token: %v", err)
	}

	return token
}
