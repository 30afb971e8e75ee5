// Package config reads server settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	TLSCert       string
	TLSKey        string
	StaticDir     string
	ContentFile   string
	AllowedOrigin string
	RateLimit     float64 // requests per second per client
	RateBurst     int
	LogLevel      string
}

// TLS reports whether both a certificate and a key are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

func (c Config) Addr() string { return ":" + c.Port }

// Load reads .env files (missing files are fine) and then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Config{
		Port:          or(getenv("PORT"), "8080"),
		TLSCert:       getenv("TLS_CERT"),
		TLSKey:        getenv("TLS_KEY"),
		StaticDir:     or(getenv("STATIC_DIR"), "./static"),
		ContentFile:   getenv("CONTENT_FILE"),
		AllowedOrigin: or(getenv("ALLOWED_ORIGIN"), "*"),
		RateLimit:     5,
		RateBurst:     10,
		LogLevel:      or(getenv("LOG_LEVEL"), "INFO"),
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT must be a positive number, got %q", v)
		}
		c.RateLimit = f
	}
	if v := getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST must be a positive integer, got %q", v)
		}
		c.RateBurst = n
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return Config{}, fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
	}
	return c, nil
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
