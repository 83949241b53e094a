package main

import (
	"context"
	"log"
	"os"

	"storefront/internal/bootstrap"
	"storefront/internal/config"
	"storefront/internal/db"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := log.New(os.Stdout, "[bootstrap] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := bootstrap.EnsureAdmin(ctx, pool, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword, logger); err != nil {
		logger.Fatalf("ensure admin: %v", err)
	}
}
