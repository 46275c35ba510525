package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EdwinMichaelLab/epic-dashboard/buildings"
	"github.com/EdwinMichaelLab/epic-dashboard/config"
	"github.com/EdwinMichaelLab/epic-dashboard/web"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to create connection pool: %v", err)
	}
	defer pool.Close()

	// The dataset is required; an unreachable source is fatal, not retried.
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("failed to reach database: %v", err)
	}

	if cfg.MapboxToken == "" {
		log.Printf("MAPBOX_TOKEN not set, map falls back to OpenStreetMap tiles")
	}

	pageHandler, err := web.NewHandler(cfg.MapboxToken)
	if err != nil {
		log.Fatalf("failed to configure dashboard page: %v", err)
	}

	buildingsHandler := buildings.NewHandler(pool)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(60*time.Second),
	)

	router.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Mount("/api/buildings", buildingsHandler.Routes())
	router.Mount("/api/charts", buildingsHandler.ChartRoutes())
	router.Get("/", pageHandler.Index)

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
