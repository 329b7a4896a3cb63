// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"
	_ "strompris/docs" // Import swagger docs
	"strompris/internal/api/handlers"
	"strompris/internal/api/middleware"
	"strompris/internal/cache"
	"strompris/internal/config"
	"strompris/internal/deals"
	"strompris/internal/prices"
	"strompris/internal/provider"
	"strompris/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles the engine services the API serves
type Services struct {
	Cache           *cache.Service
	Prices          *prices.Service
	Deals           *deals.Service
	ProviderManager *provider.Manager
}

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB, svcs Services) *gin.Engine {
	// Create router
	r := gin.Default()

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	// Initialize health handler for basic routes
	healthHandler := handlers.NewHealthHandler(db)

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	contractRepo := postgres.NewContractRepository(db)

	// Initialize handlers
	pricesHandler := handlers.NewPricesHandler(svcs.Prices, cfg.Prices.WindowDays)
	dealsHandler := handlers.NewDealsHandler(svcs.Deals)
	contractHandler := handlers.NewContractHandler(contractRepo)
	cacheHandler := handlers.NewCacheHandler(svcs.Cache)
	providerHandler := handlers.NewProviderHandler(svcs.ProviderManager)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthHandler.Health)

		// Aggregated spot price routes
		pricesGroup := v1.Group("/prices")
		{
			pricesGroup.GET("", pricesHandler.GetAggregatedPrices)
			pricesGroup.GET("/areas/:area", pricesHandler.GetAreaAverage)
		}

		// Ranked deal routes
		v1.GET("/deals", dealsHandler.GetRankedDeals)

		// Contract catalog routes
		contracts := v1.Group("/contracts")
		{
			contracts.GET("", contractHandler.ListContracts)
			contracts.GET("/:id", contractHandler.GetContract)
			contracts.POST("", contractHandler.CreateContract)
			contracts.PUT("/:id", contractHandler.UpdateContract)
			contracts.DELETE("/:id", contractHandler.DeleteContract)
		}

		// Operator routes
		v1.POST("/cache/clear", cacheHandler.ClearCache)
		v1.POST("/providers/hvakoster/fetch", providerHandler.TriggerHvakosterFetch)
	}

	return r
}
