// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/espacenaturae/storefront-backend/internal/catalog"
	"github.com/espacenaturae/storefront-backend/internal/config"
	"github.com/espacenaturae/storefront-backend/internal/handlers"
	"github.com/espacenaturae/storefront-backend/internal/middleware"
	"github.com/espacenaturae/storefront-backend/internal/services"
)

func Initialize(cat *catalog.Catalog, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(cat)
	cartService := services.NewCartService()
	selectionService := services.NewSelectionService()
	orderService := services.NewOrderService(cfg.Store, cartService)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	glossaryHandler := handlers.NewGlossaryHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	selectionHandler := handlers.NewSelectionHandler(selectionService, catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Session())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Glossary routes
		glossary := v1.Group("/glossary")
		{
			glossary.GET("", glossaryHandler.GetGlossary)
			glossary.GET("/letters", glossaryHandler.GetLetters)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PATCH("/items", cartHandler.UpdateItem)
			cart.DELETE("/items", cartHandler.RemoveItem)
		}

		// Detail-view selection routes
		selection := v1.Group("/selection")
		{
			selection.GET("", selectionHandler.GetSelection)
			selection.POST("/product", selectionHandler.SelectProduct)
			selection.POST("/option", selectionHandler.SetOption)
			selection.POST("/quantity", selectionHandler.AdjustQuantity)
		}

		// Mail composition routes
		orders := v1.Group("/orders")
		orders.Use(middleware.MailRateLimit())
		{
			orders.POST("/checkout", orderHandler.Checkout)
		}

		v1.POST("/contact", middleware.MailRateLimit(), orderHandler.Contact)
	}

	return r
}
