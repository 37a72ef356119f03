// Package coinapi provides a client for the CoinAPI.io market data API.
package coinapi

import (
	"os"
	"time"
)

// Config holds configuration for the CoinAPI client.
type Config struct {
	APIKey  string        // X-CoinAPI-Key header value
	BaseURL string        // Base URL for the API (e.g. "https://rest.coinapi.io")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads CoinAPI configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:  os.Getenv("COINAPI_KEY"),
		BaseURL: os.Getenv("COINAPI_BASE_URL"),
		Timeout: 10 * time.Second,
	}
}
