package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/josiah1121/BuckWatch/internal/api/http"
	"github.com/josiah1121/BuckWatch/internal/config"
	"github.com/josiah1121/BuckWatch/internal/scheduler"
	"github.com/josiah1121/BuckWatch/internal/sighting"
	"github.com/josiah1121/BuckWatch/internal/sighting/providers"
	"github.com/josiah1121/BuckWatch/internal/store"
	"github.com/josiah1121/BuckWatch/internal/summary"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound lookup calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Record store: embedded SQLite when a path is configured, in-memory
	// otherwise.
	var recordStore sighting.Store
	if cfg.DatabasePath != "" {
		sqliteStore, err := store.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		recordStore = sqliteStore
	} else {
		log.Println("INFO: DATABASE_PATH not set; using in-memory store")
		recordStore = store.NewMemoryStore()
	}

	// Lookup clients and the enrichment pipeline.
	weather := providers.NewOpenWeatherClient(httpClient, cfg.OpenWeatherAPIKey)
	moon := providers.NewVisualCrossingClient(httpClient, cfg.VisualCrossingAPIKey)
	service := sighting.NewService(recordStore, weather, moon, cfg.GeocoderAPIKey)

	// Dashboard summary cache with periodic refresh.
	dashboard := summary.New(recordStore, cfg.SummaryInterval)
	sched := scheduler.New(dashboard, cfg.SummaryInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "buckwatch",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		BodyLimit:             32 * 1024 * 1024, // room for base64 photo payloads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "buckwatch",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, dashboard)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
