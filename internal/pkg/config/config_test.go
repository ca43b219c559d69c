package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Session.Backend != "memory" {
		t.Fatalf("expected memory backend, got %s", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %s", cfg.Session.TTL)
	}
	if cfg.Redis.ConnectRetries != 5 {
		t.Fatalf("expected 5 retries, got %d", cfg.Redis.ConnectRetries)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MOTORQUOTE_SERVER_ADDR", ":9090")
	t.Setenv("MOTORQUOTE_SESSION_TTL", "10m")
	t.Setenv("MOTORQUOTE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Server.Addr)
	}
	if cfg.Session.TTL != 10*time.Minute {
		t.Fatalf("expected 10m, got %s", cfg.Session.TTL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
session:
  backend: redis
  ttl: 1h
redis:
  addr: cache:6379
  db: 2
catalog:
  file: /etc/motorquote/catalog.yaml
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.Session.Backend != "redis" || cfg.Session.TTL != time.Hour {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.Catalog.File != "/etc/motorquote/catalog.yaml" {
		t.Fatalf("unexpected catalog file %q", cfg.Catalog.File)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr to survive, got %s", cfg.Server.Addr)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("MOTORQUOTE_SESSION_BACKEND", "postgres")
	if _, err := Load(""); err == nil {
		t.Fatal("expected unknown backend to be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
