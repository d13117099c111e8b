package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lealre/friendlyeats-backend/internal/config"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient, cfg.MongoDb)
	database := db.Database()

	indexes := flag.Bool("indexes", false, "create indexes in the database if they do not exist")
	resetIndexes := flag.Bool("reset", false, "Delete the indexes and recreate it")
	deleteIndexes := flag.Bool("delete", false, "Delete the indexes")

	flag.Parse()

	switch {
	case *indexes:
		if *deleteIndexes {
			if err := mongodb.DeleteAllIndexes(ctx, database); err != nil {
				log.Fatalf("Failed to delete indexes: %v", err)
			}
			fmt.Println("✅ All indexes deleted successfully!")
			return
		}

		if err := mongodb.CreateAllIndexes(ctx, database, *resetIndexes); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
		fmt.Println("✅ indexes command ran successfully!")

	default:
		fmt.Println("No valid command specified.")
		flag.Usage()
	}
}
