package model

import "time"

type TransactionType string

const (
	TransactionBuy  TransactionType = "BUY"
	TransactionSell TransactionType = "SELL"
)

// StockTransaction is a single buy or sell of one stock position.
// TotalAmount is derived as Price*Quantity whenever the caller does not
// supply it explicitly (see service.TransactionTotalOnCreate).
type StockTransaction struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	StockSymbol  string          `gorm:"column:stock_symbol;type:varchar(16);index" json:"stockSymbol"`
	StockName    string          `gorm:"column:stock_name;type:varchar(128)" json:"stockName"`
	Type         TransactionType `gorm:"type:varchar(8)" json:"type"`
	Price        float64         `gorm:"type:decimal(20,4)" json:"price"`
	Quantity     int64           `json:"quantity"`
	TotalAmount  float64         `gorm:"column:total_amount;type:decimal(20,4)" json:"totalAmount"`
	InvestedDate time.Time       `gorm:"column:invested_date;type:date;index" json:"investedDate"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (StockTransaction) TableName() string { return "stock_transactions" }

// TransactionListFilters represents optional filters for listing transactions.
// Zero values / nil pointers mean filter not applied. Symbol and type are
// matched after uppercasing; date bounds are inclusive on both ends.
type TransactionListFilters struct {
	StockSymbol string
	Type        string
	StartDate   *time.Time
	EndDate     *time.Time
}
