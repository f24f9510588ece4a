package model

// Portfolio represents a named grouping of holdings from the database.
type Portfolio struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PortfolioSummary represents the current valuation of a portfolio.
// Invested and value are sums over the portfolio's holdings; gain and ROI are
// derived from those sums, not averaged over per-holding ROIs. All monetary
// values are rounded to two decimal places.
type PortfolioSummary struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	TotalInvested float64            `json:"totalInvested"`
	TotalValue    float64            `json:"totalValue"`
	TotalGain     float64            `json:"totalGain"`
	ROIPercent    float64            `json:"roiPercent"`
	RealizedGain  float64            `json:"realizedGain"`
	Holdings      []HoldingValuation `json:"holdings"`
}
