package config

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"MONGODB_URI", "MONGODB_DB", "ADMIN_TOKEN", "ADMIN_TOKEN_BCRYPT",
		"SURVEY_ADDR", "PORT", "SURVEY_GELF_ADDR", "SURVEY_DB_TIMEOUT", "SURVEY_TIMEZONE"} {
		t.Setenv(k, kv[k])
	}
}

func TestLoadRequiresMongoURI(t *testing.T) {
	setEnv(t, map[string]string{"ADMIN_TOKEN": "s3cret"})
	if _, err := Load(); !errors.Is(err, ErrMissingMongoURI) {
		t.Fatalf("expected ErrMissingMongoURI, got %v", err)
	}
}

func TestLoadRequiresAdminToken(t *testing.T) {
	setEnv(t, map[string]string{"MONGODB_URI": "mongodb://localhost:27017"})
	if _, err := Load(); !errors.Is(err, ErrMissingAdminToken) {
		t.Fatalf("expected ErrMissingAdminToken, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"MONGODB_URI": "mongodb://localhost:27017",
		"ADMIN_TOKEN": "s3cret",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.Database != "realEstate" {
		t.Fatalf("expected realEstate, got %q", cfg.Database)
	}
	if cfg.DBTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.DBTimeout)
	}
	if cfg.Location != time.Local {
		t.Fatalf("expected local zone, got %v", cfg.Location)
	}
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"MONGODB_URI":        "mongodb://db:27017",
		"MONGODB_DB":         "surveys_test",
		"ADMIN_TOKEN_BCRYPT": "$2a$10$abcdefghijklmnopqrstuv",
		"PORT":               "3000",
		"SURVEY_DB_TIMEOUT":  "3",
		"SURVEY_TIMEZONE":    "UTC",
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("expected :3000, got %q", cfg.HTTPAddr)
	}
	if cfg.Database != "surveys_test" {
		t.Fatalf("expected surveys_test, got %q", cfg.Database)
	}
	if cfg.DBTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %s", cfg.DBTimeout)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("expected UTC, got %v", cfg.Location)
	}
}

func TestLoadBadTimezone(t *testing.T) {
	setEnv(t, map[string]string{
		"MONGODB_URI":     "mongodb://localhost:27017",
		"ADMIN_TOKEN":     "s3cret",
		"SURVEY_TIMEZONE": "Mars/Olympus",
	})
	if _, err := Load(); !errors.Is(err, ErrBadTimezone) {
		t.Fatalf("expected ErrBadTimezone, got %v", err)
	}
}

func TestGetEnvIntFallback(t *testing.T) {
	t.Setenv("SURVEY_DB_TIMEOUT", "ten")
	if got := getEnvInt("SURVEY_DB_TIMEOUT", 10); got != 10 {
		t.Fatalf("expected fallback 10, got %d", got)
	}
}

func TestMalformedDotenvIsReported(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	loadDotenv()
	if !strings.Contains(buf.String(), "Warning: .env not loaded") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}
}
