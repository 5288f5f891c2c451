package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tomiwaje/stayfinder/internal/adapters/cache"
	"github.com/tomiwaje/stayfinder/internal/adapters/events"
	"github.com/tomiwaje/stayfinder/internal/adapters/memory"
	"github.com/tomiwaje/stayfinder/internal/api/handlers"
	"github.com/tomiwaje/stayfinder/internal/api/middleware"
	"github.com/tomiwaje/stayfinder/internal/api/routes"
	"github.com/tomiwaje/stayfinder/internal/application/services"
	"github.com/tomiwaje/stayfinder/internal/domain/providers"
	"github.com/tomiwaje/stayfinder/internal/infrastructure/clients/redis"
	"github.com/tomiwaje/stayfinder/internal/infrastructure/observability"
	"github.com/tomiwaje/stayfinder/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize Redis client when enabled. The application works without
	// it: caching and event publishing simply stay off.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis client, continuing without caching")
		} else {
			defer redisClient.Close()
			log.Info().Msg("Redis client initialized")
		}
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize event bus for listing change notifications
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("Event bus initialized")
	}

	// Initialize in-memory repositories and the facade
	facade := services.NewFacade(
		memory.NewUserAdapter(),
		memory.NewPlaceAdapter(),
		memory.NewAmenityAdapter(),
		memory.NewReviewAdapter(),
	)
	if eventBus != nil {
		facade.SetEventBus(eventBus)
		log.Info().Msg("Event bus configured for facade")
	}

	// Initialize cache invalidation service
	var cacheInvalidationService *services.CacheInvalidationService
	if cacheProvider != nil && eventBus != nil {
		cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidationService.Start(); err != nil {
			log.Warn().Err(err).Msg("Failed to start cache invalidation service")
		}
	}

	// Seed demo data when requested
	if cfg.Seed.DemoData {
		if err := services.SeedDemoData(ctx, facade, cfg.Seed.AdminEmail); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	// Initialize handlers
	userHandler := handlers.NewUserHandler(facade)
	placeHandler := handlers.NewPlaceHandler(facade)
	amenityHandler := handlers.NewAmenityHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Info().Msg("Cache middleware initialized")
	}

	// Set up router
	router := routes.NewRouter(
		userHandler,
		placeHandler,
		amenityHandler,
		reviewHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Error during server shutdown")
	}

	// Stop the cache invalidation service before closing the bus so the
	// subscriber is gone before its channel is closed.
	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing event bus")
		}
	}

	log.Info().Msg("Server stopped")
}
