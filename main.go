// Command goalz resets the configured database file to a clean seeded
// image. Running it removes every existing entry.
package main

import (
	"log"

	"goalz/config"
	"goalz/database"
)

func main() {
	cfg := config.Load()
	engine := database.NewEngine(cfg.DatabasePath)

	log.Println("Resetting the database ...")

	if err := engine.Drop(); err != nil {
		log.Fatalf("Failed to remove old database: %v", err)
	}
	if err := engine.CreateSchema(); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if cfg.SeedPath != "" {
		if err := engine.SeedFrom(cfg.SeedPath); err != nil {
			log.Fatalf("Failed to seed from %s: %v", cfg.SeedPath, err)
		}
	} else {
		if err := engine.Seed(); err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
	}

	log.Printf("Reset complete. Database contains a clean image at %s", cfg.DatabasePath)
}
