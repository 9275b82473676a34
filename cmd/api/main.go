package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/votepress/backend/internal/auth"
	"github.com/votepress/backend/internal/config"
	"github.com/votepress/backend/internal/database"
	"github.com/votepress/backend/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := auth.Init(cfg); err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	srv := server.New(cfg, db)

	log.Printf("Server starting on port %s", cfg.Port)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
