package main

import (
	"Nutrition-Density-Backend/cmd/config"
	migration "Nutrition-Density-Backend/cmd/database/migrate"
	"Nutrition-Density-Backend/internal/utils"
	"context"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()
	cfg := utils.AppConfig()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not configured")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := config.NewApp(context.Background(), db, cfg)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
