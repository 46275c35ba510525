package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("MAPBOX_TOKEN", "")

	cfg := Load()
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL is empty, want a development fallback")
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.MapboxToken != "" {
		t.Errorf("MapboxToken = %q, want empty when unset", cfg.MapboxToken)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example/buildings")
	t.Setenv("PORT", "9001")
	t.Setenv("MAPBOX_TOKEN", "pk.test")

	cfg := Load()
	if cfg.DatabaseURL != "postgres://example/buildings" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "postgres://example/buildings")
	}
	if cfg.Addr != ":9001" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9001")
	}
	if cfg.MapboxToken != "pk.test" {
		t.Errorf("MapboxToken = %q, want %q", cfg.MapboxToken, "pk.test")
	}
}
