package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/loomwear/internal/cartstate"
	"github.com/example/loomwear/internal/config"
	"github.com/example/loomwear/internal/database"
	"github.com/example/loomwear/internal/logging"
	"github.com/example/loomwear/internal/routes"
	"github.com/example/loomwear/internal/storage"
)

func main() {
	cfg := config.Load()
	logg := logging.New(cfg.LogLevel)
	db := database.Connect(cfg.DatabaseURL)

	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	kv, err := buildStateStore(cfg)
	if err != nil {
		log.Fatalf("state store init failed: %v", err)
	}

	// The only instances for the lifetime of the process; two writers on
	// the same keys would lose updates.
	cart := cartstate.NewCartStore(kv, logg)
	variants := cartstate.NewVariantStore(kv, logg)

	app := fiber.New(fiber.Config{
		AppName: "Loomwear Backend",
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	routes.Register(app, db, cfg, cart, variants)

	logg.Info().Str("port", cfg.AppPort).Str("state_backend", cfg.StateBackend).Msg("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

func buildStateStore(cfg *config.Config) (storage.KV, error) {
	if cfg.StateBackend == "redis" {
		return storage.NewRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
	}
	return storage.NewFile(cfg.StateDir)
}
