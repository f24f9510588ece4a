// Package alphavantage implements the equity price source against the Alpha
// Vantage GLOBAL_QUOTE API. It requires an API key; when no key is
// configured, every lookup resolves to pricing.ErrNoData rather than failing.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kingao12/investment-platform/internal/pricing"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

// requestTimeout bounds every price lookup.
const requestTimeout = 10 * time.Second

// KeySource supplies the Alpha Vantage API key. Implemented by the settings
// service so the key can be stored encrypted and rotated without a restart.
type KeySource interface {
	EquityAPIKey() (string, error)
}

// StaticKey is a KeySource backed by a fixed string, used when the key comes
// straight from the environment.
type StaticKey string

// EquityAPIKey returns the fixed key.
func (k StaticKey) EquityAPIKey() (string, error) { return string(k), nil }

// Client fetches equity prices from Alpha Vantage.
type Client struct {
	baseURL    string
	keys       KeySource
	httpClient *http.Client
}

// NewClient creates an Alpha Vantage client reading its API key from keys.
func NewClient(keys KeySource) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		keys:       keys,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests to point at an httptest server.
func NewClientWithBaseURL(baseURL string, keys KeySource) *Client {
	c := NewClient(keys)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// globalQuoteResponse models the GLOBAL_QUOTE payload. Alpha Vantage keys
// its fields with numeric prefixes.
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
	Note        string `json:"Note,omitempty"`
	Information string `json:"Information,omitempty"`
}

// Quote resolves the current price and day change for one equity symbol.
// A missing API key, a rate-limit notice, transport failures, non-2xx
// responses, and malformed payloads all resolve to pricing.ErrNoData.
func (c *Client) Quote(ctx context.Context, symbol string) (pricing.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return pricing.Quote{}, fmt.Errorf("empty symbol: %w", pricing.ErrNoData)
	}

	apiKey, err := c.keys.EquityAPIKey()
	if err != nil || strings.TrimSpace(apiKey) == "" {
		return pricing.Quote{}, fmt.Errorf("equity API key not configured: %w", pricing.ErrNoData)
	}

	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", symbol)
	query.Set("apikey", apiKey)

	endpoint := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("failed to build request: %w", pricing.ErrNoData)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("alphavantage request failed: %w", pricing.ErrNoData)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pricing.Quote{}, fmt.Errorf("alphavantage http %d: %w", resp.StatusCode, pricing.ErrNoData)
	}

	var payload globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return pricing.Quote{}, fmt.Errorf("malformed alphavantage payload: %w", pricing.ErrNoData)
	}

	// Rate-limited requests come back 200 with a Note or Information field
	// instead of a quote.
	if payload.Note != "" || payload.Information != "" {
		return pricing.Quote{}, fmt.Errorf("alphavantage rate limited: %w", pricing.ErrNoData)
	}

	price, err := strconv.ParseFloat(payload.GlobalQuote.Price, 64)
	if err != nil || price <= 0 {
		return pricing.Quote{}, fmt.Errorf("no quote for %s: %w", symbol, pricing.ErrNoData)
	}

	changePercent := 0.0
	if raw := strings.TrimSuffix(payload.GlobalQuote.ChangePercent, "%"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			changePercent = parsed
		}
	}

	return pricing.Quote{
		Symbol:    symbol,
		Price:     price,
		Change24h: changePercent,
		Currency:  "usd",
	}, nil
}
