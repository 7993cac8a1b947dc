// server/cmd/api/main.go
package main

import (
	"context"
	"log"
	"time"

	"garage-api-server/config"
	"garage-api-server/internal/api/routes"
	"garage-api-server/internal/auth"
	"garage-api-server/internal/database"
	"garage-api-server/internal/garage/mongostore"
	"garage-api-server/internal/s3"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	tokenLifetime, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil || tokenLifetime <= 0 {
		tokenLifetime = 24 * time.Hour
	}
	auth.Configure(cfg.JWT.Secret, tokenLifetime)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Could not create indexes: %v", err)
	}
	if err := database.SeedAdmin(db, "admin@garage.local", "adminpassword"); err != nil {
		log.Fatalf("Could not seed admin: %v", err)
	}
	if err := database.SeedGarage(db); err != nil {
		log.Fatalf("Could not seed garage data: %v", err)
	}

	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Could not create S3 uploader: %v", err)
	}

	stores := mongostore.New(db)
	router := routes.SetupRouter(cfg, stores, s3Uploader)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
