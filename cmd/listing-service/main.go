package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"ms-listing/internal/api"
	"ms-listing/internal/artists"
	"ms-listing/internal/artists/artist_api"
	artist_db "ms-listing/internal/artists/db"
	"ms-listing/internal/config"
	"ms-listing/internal/database/migrations"
	"ms-listing/internal/logger"
	"ms-listing/internal/shows"
	show_db "ms-listing/internal/shows/db"
	"ms-listing/internal/shows/show_api"
	"ms-listing/internal/storage"
	"ms-listing/internal/venues"
	venue_db "ms-listing/internal/venues/db"
	"ms-listing/internal/venues/venue_api"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	bunDB, err := storage.Open(cfg.Database)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect: %v", err))
	}
	defer bunDB.Close()
	log.Info("DATABASE", "Postgres connection successful")

	if cfg.Migrations.AutoMigrate {
		runner := migrations.NewRunner(bunDB, migrations.Options{
			MigrationsDir: cfg.Migrations.Dir,
			AutoMigrate:   cfg.Migrations.AutoMigrate,
			SeedData:      cfg.Migrations.SeedData,
		}, log)
		if err := runner.Run(); err != nil {
			log.Fatal("MIGRATE", fmt.Sprintf("Migration failed: %v", err))
		}
	}

	venueHandler := &venue_api.Handler{
		VenueService: venues.NewService(&venue_db.DB{Bun: bunDB}),
		Logger:       log,
	}
	artistHandler := &artist_api.Handler{
		ArtistService: artists.NewService(&artist_db.DB{Bun: bunDB}),
		Logger:        log,
	}
	showHandler := &show_api.Handler{
		ShowService: shows.NewService(&show_db.DB{Bun: bunDB}),
		Logger:      log,
	}

	r := chi.NewRouter()
	r.Use(api.RequestID)
	r.Use(api.RequestLogger(log))

	r.Route("/venues", venueHandler.Routes)
	r.Route("/artists", artistHandler.Routes)
	r.Route("/shows", showHandler.Routes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := bunDB.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("Listing service on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("HTTP error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctxShutdown)
	log.Info("SERVER", "Listing service shutdown complete")
}
