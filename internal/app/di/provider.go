// Package di provides dependency injection factories for creating application components.
package di

import (
	"relay_backend/internal/feature/relay/adapters/coinapi"
	infrahttp "relay_backend/internal/platform/http"
)

// NewProvider creates a fully configured CoinAPI client with HTTP client.
func NewProvider() *coinapi.Client {
	cfg := coinapi.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return coinapi.NewClient(cfg, httpClient)
}
