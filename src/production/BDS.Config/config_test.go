package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q; want 8000", cfg.Server.Port)
	}
	// missing MONGODB_URI must fall back, never fail
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("URI = %q; want local default", cfg.Database.URI)
	}
	if cfg.Database.Database != "bio_d_scan" || cfg.Database.Collection != "bee_data" {
		t.Errorf("database/collection = %q/%q; want bio_d_scan/bee_data", cfg.Database.Database, cfg.Database.Collection)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins = %v; want the Vite dev origin", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("MONGODB_URI", "mongodb://db.example:27017")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9100" {
		t.Errorf("Port = %q; want 9100", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://db.example:27017" {
		t.Errorf("URI = %q; want override", cfg.Database.URI)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v; want 5s", cfg.Server.ReadTimeout)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v; want %v", cfg.CORS.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q; want %q", i, cfg.CORS.AllowedOrigins[i], want[i])
		}
	}
}
