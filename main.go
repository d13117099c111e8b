package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/lealre/friendlyeats-backend/internal/config"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := mongodb.NewDB(client, cfg.MongoDb)

	if err := server.ListenAndServe(db, cfg); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
