package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/loomwear/internal/cartstate"
	"github.com/example/loomwear/internal/catalog"
	"github.com/example/loomwear/internal/config"
	"github.com/example/loomwear/internal/handlers"
	"github.com/example/loomwear/internal/middleware"
)

// Register wires up all HTTP routes. The cart and variant stores are the
// process-wide instances built at startup.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, cart *cartstate.CartStore, variants *cartstate.VariantStore) {
	catalogService := catalog.NewService(db)

	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cart, variants, catalogService)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Server is running"})
	})

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Catalog writes are administrative; reads are public.
	products := api.Group("/products")
	productHandler.RegisterProductRoutes(products, middleware.AuthMiddleware(cfg))

	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Delete("/items/:productId", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.ClearCart)

	api.Get("/selection", cartHandler.GetSelection)
	api.Put("/selection", cartHandler.UpdateSelection)

	api.Post("/bundle/quote", cartHandler.QuoteBundle)
}
