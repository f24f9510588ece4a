package model

// VersionInfo holds build and schema version information for the system endpoint.
type VersionInfo struct {
	Version       string `json:"version"`
	SchemaVersion int64  `json:"schemaVersion"`
}

// PriceSnapshot is the last successfully fetched quote for a symbol,
// persisted so the dashboard can render without a live fetch. It is a
// cache, never an authoritative valuation input: a stale snapshot is
// treated the same as no price at all once past its freshness window.
type PriceSnapshot struct {
	Symbol         string  `json:"symbol"`
	AssetClass     string  `json:"assetClass"`
	Price          float64 `json:"price"`
	Change24h      float64 `json:"change24h"`
	FetchedAtUnix  int64   `json:"fetchedAt"`
	SourceCurrency string  `json:"sourceCurrency"`
}
