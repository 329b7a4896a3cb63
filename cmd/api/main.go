// Package main provides the entry point for the strompris API server
// @title Strompris API
// @version 1.0
// @description Cost-estimation and caching engine for electricity contract comparison.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strompris/internal/aggregator"
	"strompris/internal/api/routes"
	"strompris/internal/cache"
	"strompris/internal/config"
	"strompris/internal/database"
	"strompris/internal/deals"
	"strompris/internal/prices"
	"strompris/internal/provider"
	"strompris/internal/provider/hvakoster"
	"strompris/internal/repository/postgres"
	"strompris/internal/validation"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file
	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize validators
	validation.Initialize()

	// Initialize cache store
	store, err := newCacheStore(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to initialize cache store: %v", err)
	}
	cacheService := cache.NewService(store)

	// Initialize engine services
	priceClient := hvakoster.NewClient(cfg.Prices.UpstreamBaseURL, cfg.Prices.UpstreamTimeout)
	aggService := aggregator.New(priceClient)
	priceService := prices.New(aggService, cacheService, cfg.Cache.PriceTTL, cfg.Prices.WindowDays)
	dealService := deals.New(postgres.NewContractRepository(db), priceService, cacheService, cfg.Cache.DealsTTL)

	// Initialize provider manager
	providerManager := provider.NewManager()
	providerManager.RegisterProvider(hvakoster.NewProvider(priceService, cfg.Provider["hvakoster"]))

	// Start provider scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go func() {
		if err := providerManager.StartScheduler(schedulerCtx); err != nil {
			log.Printf("Provider scheduler stopped: %v", err)
		}
	}()

	// Setup routes
	router := routes.SetupRoutes(cfg, db, routes.Services{
		Cache:           cacheService,
		Prices:          priceService,
		Deals:           dealService,
		ProviderManager: providerManager,
	})

	// Convert port string to int
	port, err := strconv.Atoi(cfg.API.Port)
	if err != nil {
		log.Fatalf("Invalid port number: %v", err)
	}

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	stopScheduler()

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

// newCacheStore creates the cache backend selected by configuration
func newCacheStore(cfg config.CacheConfig) (cache.Store, error) {
	if cfg.Backend == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		})
	}
	return cache.NewMemoryStore(), nil
}
