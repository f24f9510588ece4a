package request

type CreateHoldingRequest struct {
	PortfolioID string `json:"portfolioId"`
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`
	AssetClass  string `json:"assetClass"`
}

type UpdateHoldingRequest struct {
	Symbol      *string `json:"symbol,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	AssetClass  *string `json:"assetClass,omitempty"`
}
