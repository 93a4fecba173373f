package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Addr    string
	TLSCert string
	TLSKey  string

	// TokenKey signs and verifies bearer tokens. APIKeyHash is the bcrypt hash of a
	// static API key. Authentication is off when both are empty.
	TokenKey   string
	APIKeyHash string

	RateLimit float64
	RateBurst int

	LogLevel        log.Level
	ShutdownTimeout time.Duration
}

// TLS reports whether both a certificate and a key are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// Load reads the environment, after loading files (".env" when none are given).
// Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		log.WithError(err).Debug("no env file loaded")
	}

	c := Config{
		Addr:            getenv("PHYSIQUIST_ADDR", ":8080"),
		TLSCert:         os.Getenv("PHYSIQUIST_TLS_CERT"),
		TLSKey:          os.Getenv("PHYSIQUIST_TLS_KEY"),
		TokenKey:        os.Getenv("TOKEN_KEY"),
		APIKeyHash:      os.Getenv("PHYSIQUIST_API_KEY_HASH"),
		ShutdownTimeout: 5 * time.Second,
	}

	var err error
	if c.RateLimit, err = strconv.ParseFloat(getenv("PHYSIQUIST_RATE_LIMIT", "5"), 64); err != nil || c.RateLimit <= 0 {
		return Config{}, fmt.Errorf("config: PHYSIQUIST_RATE_LIMIT must be a positive number")
	}
	if c.RateBurst, err = strconv.Atoi(getenv("PHYSIQUIST_RATE_BURST", "10")); err != nil || c.RateBurst <= 0 {
		return Config{}, fmt.Errorf("config: PHYSIQUIST_RATE_BURST must be a positive integer")
	}
	if c.LogLevel, err = log.ParseLevel(getenv("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if v := os.Getenv("PHYSIQUIST_SHUTDOWN_TIMEOUT"); v != "" {
		if c.ShutdownTimeout, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("config: PHYSIQUIST_SHUTDOWN_TIMEOUT: %w", err)
		}
	}
	return c, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
