package model

import "time"

// StockCapital is a dated contribution of funds into the stock account.
type StockCapital struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;index" json:"date"`
	Amount    float64   `gorm:"type:decimal(20,4)" json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StockCapital) TableName() string { return "stock_capitals" }

// CoinCapital is a dated contribution of funds into the crypto account.
// TotalAmount is derived as Amount+TransactionCharge whenever the caller does
// not supply it explicitly (see service.CoinCapitalTotalOnCreate).
type CoinCapital struct {
	ID                int64     `gorm:"primaryKey" json:"id"`
	Date              time.Time `gorm:"type:date;index" json:"date"`
	Amount            float64   `gorm:"type:decimal(20,4)" json:"amount"`
	TransactionCharge float64   `gorm:"column:transaction_charge;type:decimal(20,4)" json:"transactionCharge"`
	TotalAmount       float64   `gorm:"column:total_amount;type:decimal(20,4)" json:"totalAmount"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (CoinCapital) TableName() string { return "coin_capitals" }

// DateRangeFilters represents the optional date window for listing capital
// records. Nil pointers mean filter not applied; bounds are inclusive.
type DateRangeFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
