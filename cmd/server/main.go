package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gdg-garage/hotel-registration-api/internal/auth"
	"github.com/gdg-garage/hotel-registration-api/internal/config"
	"github.com/gdg-garage/hotel-registration-api/internal/database"
	"github.com/gdg-garage/hotel-registration-api/internal/format"
	"github.com/gdg-garage/hotel-registration-api/internal/handlers"
	"github.com/gdg-garage/hotel-registration-api/internal/models"
	"github.com/gdg-garage/hotel-registration-api/internal/notifier"
	"github.com/gdg-garage/hotel-registration-api/internal/service"
	"github.com/gdg-garage/hotel-registration-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()
	settings, err := cfg.Settings()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	formatter := format.NewFormatter(settings.Language, settings.Currency)

	// Connect to Database
	db := database.Connect(cfg)

	opts := []service.Option{
		service.WithStore(store.New(db)),
		service.WithWifiRate(settings.WifiRate),
	}
	discordNotifier, err := notifier.NewDiscordNotifier(cfg, formatter)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		opts = append(opts, service.WithNotifier(discordNotifier))
	}

	registrations := service.New(settings.Location, opts...)
	ctx := context.Background()
	if err := registrations.Load(ctx); err != nil {
		log.Fatalf("Failed to load registrations: %v", err)
	}
	if cfg.SeedSample {
		if err := registrations.Seed(ctx, models.SampleRegistrations(time.Now())); err != nil {
			log.Fatalf("Failed to seed sample registrations: %v", err)
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	registrationHandler := handlers.NewRegistrationHandler(registrations, authHandler, formatter)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, registrationHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
