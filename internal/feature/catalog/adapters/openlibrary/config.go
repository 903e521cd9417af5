// Package openlibrary provides a client for the Open Library search API.
package openlibrary

import (
	"os"
	"time"
)

// Config holds configuration for the Open Library API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://openlibrary.org")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Open Library configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("OPENLIBRARY_BASE_URL")
	if base == "" {
		base = "https://openlibrary.org"
	}
	return Config{
		BaseURL: base,
		Timeout: 5 * time.Second,
	}
}
