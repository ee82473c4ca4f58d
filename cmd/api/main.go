package main

import (
	"log"
	"time"

	"github.com/andratama/topupstore-golang/internal/auth"
	"github.com/andratama/topupstore-golang/internal/config"
	"github.com/andratama/topupstore-golang/internal/currency"
	"github.com/andratama/topupstore-golang/internal/database"
	"github.com/andratama/topupstore-golang/internal/handlers"
	"github.com/andratama/topupstore-golang/internal/logger"
	"github.com/andratama/topupstore-golang/internal/routes"
	"github.com/andratama/topupstore-golang/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		zlog.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()
	zlog.Info("Database connection pool established")

	stores := store.NewStores(db)

	app := &handlers.Handlers{
		Users:      stores.Users,
		Categories: stores.Categories,
		Products:   stores.Products,
		Banners:    stores.Banners,
		Tokens:     auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour),
		Converter:  currency.NewConverter(cfg.Currency.MYRToIDRRate),
		Config:     cfg,
		Log:        zlog,
	}

	router := routes.SetupRouter(app)

	zlog.Infow("Starting API server", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zlog.Fatalw("Failed to start server", "error", err)
	}
}
