package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lealre/friendlyeats-backend/internal/config"
	"github.com/lealre/friendlyeats-backend/internal/mongodb"
	"github.com/lealre/friendlyeats-backend/internal/services/restaurants"
	"github.com/lealre/friendlyeats-backend/internal/services/reviews"
)

// SeedRestaurant is one entry of the fixture file. Rating statistics are
// not part of the fixture: every seeded review goes through the same
// transactional write path as a live submission, so the stats come out
// consistent by construction.
type SeedRestaurant struct {
	Name     string       `json:"name"`
	City     string       `json:"city"`
	Category string       `json:"category"`
	Price    string       `json:"price"` // dollar-sign token, e.g. "$$"
	Photo    string       `json:"photo"`
	Reviews  []SeedReview `json:"reviews"`
}

type SeedReview struct {
	Rating json.Number `json:"rating"`
	Text   string      `json:"text"`
	UserId string      `json:"userId"`
}

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "cmd/fixtures/restaurants.json", "path to the restaurants fixture file")
	flag.Parse()

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

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read fixture file %s: %v", *file, err)
	}

	var seeds []SeedRestaurant
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("Failed to parse fixture file: %v", err)
	}

	for _, seed := range seeds {
		tier, err := restaurants.PriceTier(seed.Price)
		if err != nil {
			log.Fatalf("Restaurant %q: %v", seed.Name, err)
		}

		restaurant, err := db.AddRestaurant(ctx, mongodb.RestaurantDb{
			Name:     seed.Name,
			City:     seed.City,
			Category: seed.Category,
			Price:    tier,
			Photo:    seed.Photo,
		})
		if err != nil {
			log.Fatalf("Failed to add restaurant %q: %v", seed.Name, err)
		}

		for _, seedReview := range seed.Reviews {
			_, err := reviews.AddReview(db, ctx, restaurant.Id, seedReview.UserId, reviews.NewReview{
				Rating: seedReview.Rating,
				Text:   seedReview.Text,
			})
			if err != nil {
				log.Fatalf("Failed to add review for %q: %v", seed.Name, err)
			}
		}

		log.Printf("Seeded %q with %d reviews", seed.Name, len(seed.Reviews))
	}
}
