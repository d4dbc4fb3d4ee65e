package main

import (
	"context"
	"log"
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
)

func main() {
	cfg := config.Load()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("ERROR: Failed to run migrations: %v", err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("ERROR: Failed to connect to database: %v", err)
	}
	defer pool.Close()

	db.InitCache()

	router := api.NewRouter(pool, cfg.DemoMode)

	log.Printf("INFO: Server listening on port %s (demo mode: %v)", cfg.Port, cfg.DemoMode)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("ERROR: Server stopped: %v", err)
	}
}
