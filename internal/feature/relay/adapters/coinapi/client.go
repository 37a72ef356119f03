package coinapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"relay_backend/internal/feature/relay/domain/entity"
	"relay_backend/internal/feature/relay/usecase"
)

// Client fetches trade history from CoinAPI.io. It implements the
// TickProvider interface consumed by the ingestion usecase.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.TickProvider = (*Client)(nil)

// NewClient creates a CoinAPI client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetTrades returns all trades for symbol with time_start = since. CoinAPI's
// time_start filter is inclusive; the cursor's one-second advance prevents
// re-fetching already ingested records. An empty array means nothing new.
func (c *Client) GetTrades(ctx context.Context, symbol, since string) ([]entity.RawTick, error) {
	q := url.Values{}
	q.Set("time_start", since)

	u := fmt.Sprintf("%s/v1/trades/BITSTAMP_SPOT_%s_USD/history?%s", c.cfg.BaseURL, symbol, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-CoinAPI-Key", c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("coinapi http %d", res.StatusCode)
	}

	var trades []entity.RawTick
	if err := json.NewDecoder(res.Body).Decode(&trades); err != nil {
		return nil, fmt.Errorf("decode coinapi payload: %w", err)
	}
	return trades, nil
}
