// Package config loads runtime configuration from the environment. Every
// value has a demo default, so a bare invocation works out of the box; a
// .env file in the working directory is honored when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime knobs.
type Config struct {
	UnitPrice      int           // per-seat price for catalog events
	ConvenienceFee int           // flat surcharge added to every booking
	SuccessRate    float64       // payment simulator approval probability
	PaymentTimeout time.Duration // ceiling on one payment attempt
	CatalogURL     string        // catalog service base URL; empty uses the sample catalog
	DemoUser       string        // pre-authenticated user name, bypasses the sign-in screen
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		UnitPrice:      envInt("TSW_TICKET_PRICE", 250),
		ConvenienceFee: envInt("TSW_CONVENIENCE_FEE", 50),
		SuccessRate:    envFloat("TSW_PAYMENT_SUCCESS_RATE", 0.9),
		PaymentTimeout: envDuration("TSW_PAYMENT_TIMEOUT", 10*time.Second),
		CatalogURL:     os.Getenv("TSW_CATALOG_URL"),
		DemoUser:       os.Getenv("TSW_USER"),
	}
}

func envInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
