// Package coingecko implements the crypto price source against the CoinGecko
// simple-price API. Lookups are keyed by a static symbol-to-coin-id table;
// anything outside the table, and any transport or payload problem, resolves
// to pricing.ErrNoData.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kingao12/investment-platform/internal/pricing"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// requestTimeout bounds every price lookup.
const requestTimeout = 10 * time.Second

// Client fetches crypto prices from CoinGecko.
type Client struct {
	baseURL    string
	vsCurrency string
	httpClient *http.Client
}

// NewClient creates a CoinGecko client reporting prices in vsCurrency
// (e.g. "krw", "usd").
func NewClient(vsCurrency string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		vsCurrency: strings.ToLower(vsCurrency),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests to point at an httptest server.
func NewClientWithBaseURL(baseURL, vsCurrency string) *Client {
	c := NewClient(vsCurrency)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Quote resolves the current price and 24h change for one crypto symbol.
// Returns an error wrapping pricing.ErrNoData for unknown symbols, transport
// failures, non-2xx responses, and malformed payloads.
func (c *Client) Quote(ctx context.Context, symbol string) (pricing.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	coinID, ok := symbolToID[symbol]
	if !ok {
		return pricing.Quote{}, fmt.Errorf("unknown crypto symbol %s: %w", symbol, pricing.ErrNoData)
	}

	payload, err := c.fetchSimplePrice(ctx, []string{coinID})
	if err != nil {
		return pricing.Quote{}, err
	}

	quote, ok := c.quoteFromPayload(symbol, coinID, payload)
	if !ok {
		return pricing.Quote{}, fmt.Errorf("no price returned for %s: %w", symbol, pricing.ErrNoData)
	}

	return quote, nil
}

// Quotes resolves several crypto symbols in a single API call. Symbols
// missing from the mapping table or absent from the response are simply left
// out of the result; one bad symbol never fails the batch.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]pricing.Quote, error) {
	coinIDs := make([]string, 0, len(symbols))
	idBySymbol := make(map[string]string, len(symbols))
	for _, s := range symbols {
		symbol := strings.ToUpper(strings.TrimSpace(s))
		if coinID, ok := symbolToID[symbol]; ok {
			coinIDs = append(coinIDs, coinID)
			idBySymbol[symbol] = coinID
		}
	}

	quotes := make(map[string]pricing.Quote, len(idBySymbol))
	if len(coinIDs) == 0 {
		return quotes, nil
	}

	payload, err := c.fetchSimplePrice(ctx, coinIDs)
	if err != nil {
		return nil, err
	}

	for symbol, coinID := range idBySymbol {
		if quote, ok := c.quoteFromPayload(symbol, coinID, payload); ok {
			quotes[symbol] = quote
		}
	}

	return quotes, nil
}

// fetchSimplePrice executes the /simple/price request for the given coin IDs.
// All failure modes map to pricing.ErrNoData.
func (c *Client) fetchSimplePrice(ctx context.Context, coinIDs []string) (simplePriceResponse, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(coinIDs, ","))
	query.Set("vs_currencies", c.vsCurrency+",usd")
	query.Set("include_24hr_change", "true")

	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", pricing.ErrNoData)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko request failed: %w", pricing.ErrNoData)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko http %d: %w", resp.StatusCode, pricing.ErrNoData)
	}

	var payload simplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed coingecko payload: %w", pricing.ErrNoData)
	}

	return payload, nil
}

func (c *Client) quoteFromPayload(symbol, coinID string, payload simplePriceResponse) (pricing.Quote, bool) {
	fields, ok := payload[coinID]
	if !ok {
		return pricing.Quote{}, false
	}

	price, ok := fields[c.vsCurrency]
	if !ok || price <= 0 {
		return pricing.Quote{}, false
	}

	return pricing.Quote{
		Symbol:    symbol,
		Price:     price,
		Change24h: fields[c.vsCurrency+"_24h_change"],
		Currency:  c.vsCurrency,
	}, true
}
