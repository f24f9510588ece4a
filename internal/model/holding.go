package model

// Asset classes a holding can belong to. CRYPTO resolves prices through the
// crypto source, STOCK and ETF through the equity source; the remaining
// classes have no live price feed and always value at break-even.
const (
	AssetStock      = "STOCK"
	AssetCrypto     = "CRYPTO"
	AssetETF        = "ETF"
	AssetBond       = "BOND"
	AssetRealEstate = "REAL_ESTATE"
	AssetCommodity  = "COMMODITY"
	AssetCash       = "CASH"
	AssetOther      = "OTHER"
)

// ValidAssetClasses contains the allowed asset class values.
var ValidAssetClasses = map[string]bool{
	AssetStock: true, AssetCrypto: true, AssetETF: true, AssetBond: true,
	AssetRealEstate: true, AssetCommodity: true, AssetCash: true, AssetOther: true,
}

// Holding represents one tracked symbol within a portfolio.
// It owns its transactions exclusively; deleting a holding cascades to them.
type Holding struct {
	ID          string `json:"id"`
	PortfolioID string `json:"portfolioId"`
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
	AssetClass  string `json:"assetClass"`
}

// HoldingValuation carries the derived, never-persisted numbers for a single
// holding: the cost-basis output combined with a best-effort live price.
// Only the transaction ledger is authoritative; everything here is a pure
// function of the ledger plus the externally supplied price.
type HoldingValuation struct {
	HoldingID       string  `json:"holdingId"`
	Symbol          string  `json:"symbol"`
	DisplayName     string  `json:"displayName"`
	AssetClass      string  `json:"assetClass"`
	NetInvested     float64 `json:"netInvested"`
	NetShares       float64 `json:"netShares"`
	AvgCostPerShare float64 `json:"avgCostPerShare"`
	RealizedGain    float64 `json:"realizedGain"`
	CurrentPrice    float64 `json:"currentPrice"`
	PriceChange24h  float64 `json:"priceChange24h"`
	Priced          bool    `json:"priced"`
	CurrentValue    float64 `json:"currentValue"`
	UnrealizedGain  float64 `json:"unrealizedGain"`
	ROIPercent      float64 `json:"roiPercent"`
}
