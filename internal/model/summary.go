package model

import "time"

// PortfolioHolding is the per-symbol net position computed by folding over
// every stock transaction. Quantities and invested amounts may go negative
// when recorded sells exceed recorded buys; that is surfaced, not corrected.
type PortfolioHolding struct {
	StockSymbol   string              `json:"stockSymbol"`
	StockName     string              `json:"stockName"`
	TotalQuantity int64               `json:"totalQuantity"`
	TotalInvested float64             `json:"totalInvested"`
	Transactions  []*StockTransaction `json:"transactions"`
}

// StockCapitalSummary aggregates the whole stock capital record set.
type StockCapitalSummary struct {
	TotalCapital        float64    `json:"totalCapital"`
	RecordCount         int        `json:"recordCount"`
	FirstInvestmentDate *time.Time `json:"firstInvestmentDate"`
	LastInvestmentDate  *time.Time `json:"lastInvestmentDate"`
	AverageInvestment   float64    `json:"averageInvestment"`
}

// CoinCapitalTotals carries the running totals attached to a filtered coin
// capital listing.
type CoinCapitalTotals struct {
	TotalAmount            float64 `json:"totalAmount"`
	TotalTransactionCharge float64 `json:"totalTransactionCharge"`
	GrandTotal             float64 `json:"grandTotal"`
}

// CoinCapitalSummary aggregates the whole coin capital record set.
type CoinCapitalSummary struct {
	TotalAmount              float64    `json:"totalAmount"`
	TotalTransactionCharge   float64    `json:"totalTransactionCharge"`
	GrandTotal               float64    `json:"grandTotal"`
	RecordCount              int        `json:"recordCount"`
	FirstInvestmentDate      *time.Time `json:"firstInvestmentDate"`
	LastInvestmentDate       *time.Time `json:"lastInvestmentDate"`
	AverageAmount            float64    `json:"averageAmount"`
	AverageTransactionCharge float64    `json:"averageTransactionCharge"`
}
