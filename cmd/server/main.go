package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"wordrush/internal/catalog"
	"wordrush/internal/config"
	"wordrush/internal/database"
	"wordrush/internal/engine"
	"wordrush/internal/handlers"
	"wordrush/internal/repository"
	"wordrush/internal/security"
	"wordrush/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load and validate the game content catalog
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalf("Invalid content catalog: %v", err)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Seed the built-in profiles on first run
	if err := profileRepo.EnsureDefaults(); err != nil {
		log.Fatalf("Failed to seed default profiles: %v", err)
	}

	// Initialize services
	secret := cfg.SettingsSecret
	if secret == "" {
		secret = uuid.NewString()
		log.Println("Warning: SETTINGS_SECRET not set, settings tokens will not survive restarts")
	}
	tokens := security.NewTokenIssuer(secret, cfg.SettingsTokenTTL)

	eng := engine.New(cat)
	profileService := service.NewProfileService(profileRepo, eng, cat)
	saveDataService := service.NewSaveDataService(profileRepo)
	authService := service.NewAuthService(settingsRepo, tokens)

	if err := authService.EnsureDefaultPIN(); err != nil {
		log.Fatalf("Failed to seed parent PIN: %v", err)
	}

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.ReportFromEmail, cfg.ReportToEmail, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService, security.NewRateLimiter(10, time.Minute))
	profileHandler := handlers.NewProfileHandler(profileService)
	activityHandler := handlers.NewActivityHandler(profileService)
	shopHandler := handlers.NewShopHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(cat)
	settingsHandler := handlers.NewSettingsHandler(authService, profileService, saveDataService, reportService)

	// Setup routes
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, middleware, profileHandler, activityHandler, shopHandler, catalogHandler, settingsHandler)

	// Static files (the game frontend)
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticFilesPath)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
