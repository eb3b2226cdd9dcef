package main

import (
	"slices"
	"testing"

	"lg/fitplan-go-api/internal/planner"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(envMap(nil))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != "localhost:3000" || cfg.CatalogSource != sourceEmbedded {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.MatchPolicy != planner.MatchSubstring {
		t.Errorf("MatchPolicy = %v", cfg.MatchPolicy)
	}
	if !slices.Equal(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(envMap(map[string]string{
		"ADDR":           ":8080",
		"CATALOG_SOURCE": "Postgres",
		"DB_URL":         "postgres://localhost/fitplan",
		"ALLERGEN_MATCH": "token",
		"CORS_ORIGINS":   "http://a.test, ,http://b.test",
	}))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.CatalogSource != sourcePostgres || cfg.DBURL == "" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.MatchPolicy != planner.MatchToken {
		t.Errorf("MatchPolicy = %v", cfg.MatchPolicy)
	}
	if !slices.Equal(cfg.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad policy":       {"ALLERGEN_MATCH": "fuzzy"},
		"bad source":       {"CATALOG_SOURCE": "s3"},
		"dir without path": {"CATALOG_SOURCE": "dir"},
		"postgres, no url": {"CATALOG_SOURCE": "postgres"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(envMap(env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
