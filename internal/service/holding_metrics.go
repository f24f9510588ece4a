package service

import (
	"github.com/kingao12/investment-platform/internal/model"
)

// CostBasis is the output of reducing a holding's transaction ledger:
// the capital still invested, the units still held, and the weighted-average
// cost of those units.
type CostBasis struct {
	NetInvested     float64 // Capital currently tied up in the position
	NetShares       float64 // Units currently held
	AvgCostPerShare float64 // NetInvested / NetShares, 0 when flat
}

// CalculateCostBasis reduces a transaction ledger to its cost basis using
// weighted-average-cost accounting over a single pool (no lot tracking).
//
// Processing walks the ledger in list order:
//   - BUY: invested grows by totalAmount plus fee; shares grow by quantity.
//   - SELL: invested shrinks by avgCost * quantity at the pre-sale average;
//     shares shrink by quantity. Sell fees never touch invested capital.
//
// A SELL against zero held shares uses an average cost of 0, so a degenerate
// ledger cannot divide by zero. A SELL exceeding held shares is not rejected
// here; shares and invested go negative. Stored ledgers cannot reach that
// state (the transaction service rejects over-sells on write), but imported
// or historical data is reduced as-is.
func CalculateCostBasis(transactions []model.Transaction) CostBasis {
	var invested, shares float64

	for _, tx := range transactions {
		switch tx.Kind {
		case model.TransactionBuy:
			invested += tx.TotalAmount + tx.Fee
			shares += tx.Quantity
		case model.TransactionSell:
			avgCost := 0.0
			if shares != 0 {
				avgCost = invested / shares
			}
			invested -= avgCost * tx.Quantity
			shares -= tx.Quantity
		}
	}

	avgCostPerShare := 0.0
	if shares > 0 {
		avgCostPerShare = invested / shares
	}

	return CostBasis{
		NetInvested:     invested,
		NetShares:       shares,
		AvgCostPerShare: avgCostPerShare,
	}
}

// CalculateRealizedGain sums the gross proceeds of all SELL transactions.
// This is a simplified realized-gain proxy: sale proceeds, not
// proceeds-minus-cost-basis.
func CalculateRealizedGain(transactions []model.Transaction) float64 {
	var proceeds float64
	for _, tx := range transactions {
		if tx.Kind == model.TransactionSell {
			proceeds += tx.TotalAmount
		}
	}
	return proceeds
}

// ValueHolding combines a holding's cost basis with an optionally resolved
// live price into the full derived valuation.
//
// When no price is available the holding is valued at break-even: current
// value equals invested capital, giving zero unrealized gain and zero ROI.
// Showing a number beats showing a lookup failure.
func ValueHolding(holding model.Holding, transactions []model.Transaction, price float64, priced bool) model.HoldingValuation {
	basis := CalculateCostBasis(transactions)

	currentValue := basis.NetInvested
	if priced {
		currentValue = basis.NetShares * price
	}

	unrealizedGain := currentValue - basis.NetInvested

	roiPercent := 0.0
	if basis.NetInvested != 0 {
		roiPercent = round(unrealizedGain / basis.NetInvested * 100)
	}

	valuation := model.HoldingValuation{
		HoldingID:       holding.ID,
		Symbol:          holding.Symbol,
		DisplayName:     holding.DisplayName,
		AssetClass:      holding.AssetClass,
		NetInvested:     basis.NetInvested,
		NetShares:       basis.NetShares,
		AvgCostPerShare: basis.AvgCostPerShare,
		RealizedGain:    CalculateRealizedGain(transactions),
		Priced:          priced,
		CurrentValue:    currentValue,
		UnrealizedGain:  unrealizedGain,
		ROIPercent:      roiPercent,
	}
	if priced {
		valuation.CurrentPrice = price
	}

	return valuation
}
