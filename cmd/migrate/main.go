package main

import (
	"flag"
	"log"

	"github.com/andratama/topupstore-golang/internal/config"
	"github.com/andratama/topupstore-golang/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "also insert the admin account and starter category")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	if *seed {
		log.Println("Seeding database...")
		if err := database.Seed(db, cfg.Admin); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed successfully.")
	}
}
