package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lg/fitplan-go-api/internal/catalog"
	"lg/fitplan-go-api/internal/planner"
)

// Catalog sources selectable through CATALOG_SOURCE.
const (
	sourceEmbedded = "embedded"
	sourceDir      = "dir"
	sourcePostgres = "postgres"
)

// config is read once from the environment (after .env is loaded).
type config struct {
	Addr          string
	CatalogSource string
	CatalogDir    string
	DBURL         string
	MatchPolicy   planner.MatchPolicy
	CORSOrigins   []string
}

// loadConfig reads the environment through getenv and rejects values the
// server cannot start with.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		Addr:          envOr(getenv, "ADDR", "localhost:3000"),
		CatalogSource: strings.ToLower(envOr(getenv, "CATALOG_SOURCE", sourceEmbedded)),
		CatalogDir:    getenv("CATALOG_DIR"),
		DBURL:         getenv("DB_URL"),
	}

	policy, ok := planner.ParseMatchPolicy(getenv("ALLERGEN_MATCH"))
	if !ok {
		return config{}, fmt.Errorf("ALLERGEN_MATCH must be substring or token, got %q", getenv("ALLERGEN_MATCH"))
	}
	cfg.MatchPolicy = policy

	for _, o := range strings.Split(envOr(getenv, "CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	switch cfg.CatalogSource {
	case sourceEmbedded:
	case sourceDir:
		if cfg.CatalogDir == "" {
			return config{}, fmt.Errorf("CATALOG_DIR is required when CATALOG_SOURCE=%s", sourceDir)
		}
	case sourcePostgres:
		if cfg.DBURL == "" {
			return config{}, fmt.Errorf("DB_URL is required when CATALOG_SOURCE=%s", sourcePostgres)
		}
	default:
		return config{}, fmt.Errorf("CATALOG_SOURCE must be one of %s, %s, %s; got %q",
			sourceEmbedded, sourceDir, sourcePostgres, cfg.CatalogSource)
	}
	return cfg, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadCatalog loads the meal and workout tables once from the configured
// source. The Postgres pool is closed again as soon as the tables are read.
func loadCatalog(ctx context.Context, cfg config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case sourceDir:
		return catalog.LoadDir(cfg.CatalogDir)
	case sourcePostgres:
		pool, err := getDBPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return catalog.LoadPostgres(ctx, pool)
	default:
		return catalog.LoadEmbedded()
	}
}

// getDBPool creates a connection pool for dbURL.
func getDBPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Use simple query protocol to avoid "cached plan must not change result type"
	// errors from server-side prepared statement caches after schema changes.
	pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Println("DB pool ready!")
	return pool, nil
}
