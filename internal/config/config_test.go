package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.MaxSessions != 1024 || cfg.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Fatalf("Level = %v, want info", cfg.Level())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CALPUZZLE_ADDR", ":9090")
	t.Setenv("CALPUZZLE_LOG_LEVEL", "DEBUG")
	t.Setenv("CALPUZZLE_TIMEZONE", "UTC")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.Level() != zerolog.DebugLevel {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("Location = %v, %v", loc, err)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("CALPUZZLE_MAX_SESSIONS", "not-an-int")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
	t.Setenv("CALPUZZLE_MAX_SESSIONS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero max sessions")
	}
}

func TestLocationUnknownZone(t *testing.T) {
	if _, err := (Config{Timezone: "Nowhere/Special"}).Location(); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte("CALPUZZLE_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("CALPUZZLE_TEST_DOTENV", "")
	os.Unsetenv("CALPUZZLE_TEST_DOTENV")
	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), p); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("CALPUZZLE_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("CALPUZZLE_TEST_DOTENV = %q, want from-file", got)
	}
}

func TestLoadDotEnvMalformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte("CALPUZZLE_BROKEN=\"unterminated\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	err := LoadDotEnv(p)
	if err == nil || !strings.Contains(err.Error(), p) {
		t.Fatalf("LoadDotEnv err = %v, want parse error naming %s", err, p)
	}
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv(missing) err = %v, want nil", err)
	}
}
