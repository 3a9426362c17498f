package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr         string
	MongoURI         string
	Database         string
	AdminToken       string
	AdminTokenBcrypt string
	GelfAddr         string
	DBTimeout        time.Duration
	Location         *time.Location
}

var (
	ErrMissingMongoURI   = errors.New("config: MONGODB_URI is not set")
	ErrMissingAdminToken = errors.New("config: ADMIN_TOKEN or ADMIN_TOKEN_BCRYPT must be set")
	ErrBadTimezone       = errors.New("config: SURVEY_TIMEZONE is not a known zone")
)

// Load reads the server configuration. The admin secret has no default.
func Load() (*Config, error) {
	cfg, err := LoadDB()
	if err != nil {
		return nil, err
	}
	cfg.HTTPAddr = getEnv("SURVEY_ADDR", ":8080")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SURVEY_ADDR") == "" {
		cfg.HTTPAddr = ":" + port
	}
	cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	cfg.AdminTokenBcrypt = os.Getenv("ADMIN_TOKEN_BCRYPT")
	if cfg.AdminToken == "" && cfg.AdminTokenBcrypt == "" {
		return nil, ErrMissingAdminToken
	}
	cfg.GelfAddr = os.Getenv("SURVEY_GELF_ADDR")
	return cfg, nil
}

// LoadDB reads only what the maintenance commands need to reach the database.
func LoadDB() (*Config, error) {
	loadDotenv()

	cfg := &Config{
		MongoURI:  os.Getenv("MONGODB_URI"),
		Database:  getEnv("MONGODB_DB", "realEstate"),
		DBTimeout: time.Duration(getEnvInt("SURVEY_DB_TIMEOUT", 10)) * time.Second,
		Location:  time.Local,
	}
	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	if tz := os.Getenv("SURVEY_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, ErrBadTimezone
		}
		cfg.Location = loc
	}
	return cfg, nil
}

// loadDotenv never overrides variables already present in the environment.
func loadDotenv() {
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				log.Printf("Warning: %s not loaded: %v", f, err)
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return fallback
	}
	return n
}
