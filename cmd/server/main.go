package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ly2xxx/gco/internal/api"
	"github.com/ly2xxx/gco/internal/api/handlers"
	"github.com/ly2xxx/gco/internal/api/middleware"
	"github.com/ly2xxx/gco/internal/providers"
	"github.com/ly2xxx/gco/internal/services"
	"github.com/ly2xxx/gco/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if cfg.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}
	logger := logrus.StandardLogger()

	// Connect to Redis. The API serves without it, so a missing cache is a
	// warning, not a startup failure.
	var cacheService *services.CacheService
	var datasetCache services.DatasetCache
	if opt, err := redis.ParseURL(cfg.RedisURL); err != nil {
		logger.WithError(err).Warn("Invalid Redis URL, running without cache")
	} else {
		redisClient := redis.NewClient(opt)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.WithError(err).Warn("Redis unreachable, running without cache")
			redisClient.Close()
		} else {
			defer redisClient.Close()
			cacheService = services.NewCacheService(redisClient)
			datasetCache = cacheService
		}
	}

	// Initialize data pipeline
	sheetsClient := providers.NewSheetsClient(cfg.SheetID, cfg.SheetGID, cfg.SheetTimeout, logger)
	sampleGen := providers.NewSampleGenerator(cfg.SampleSeed)
	loader := services.NewDataLoader(sheetsClient, sampleGen, datasetCache, cfg.DataCacheTTL, logger)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health endpoints at root level (not under /api/v1)
	healthHandler := handlers.NewHealthHandler(cacheService)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, loader, logger)

	// Log all registered routes
	logger.Info("=== REGISTERED ROUTES ===")
	for _, route := range router.Routes() {
		logger.Infof("%s %s", route.Method, route.Path)
	}
	logger.Info("=========================")

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
