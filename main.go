package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	"lg/fitplan-go-api/internal/planner"
)

func main() {
	// Set properties of the predefined Logger, including the log entry
	// prefix and a flag to disable printing the time, source file, and line
	// number.
	log.SetPrefix("lg/fitplan-go-api: ")
	log.SetFlags(0)

	// .env is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := loadCatalog(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Unable to load catalog from %s: %v", cfg.CatalogSource, err)
	}
	log.Printf("Catalog loaded from %s: %d meals, %d workouts (allergen match: %s)",
		cfg.CatalogSource, len(cat.Meals()), len(cat.Workouts()), cfg.MatchPolicy)

	reg := prometheus.NewRegistry()
	h := newHandler(planner.New(cat, planner.WithMatchPolicy(cfg.MatchPolicy)), reg)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader, "Content-Disposition"},
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Starting gin app on %s...", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
