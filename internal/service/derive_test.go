package service

import (
	"testing"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestTransactionTotalOnCreate(t *testing.T) {
	if got := TransactionTotalOnCreate(100, 5, nil); got != 500 {
		t.Fatalf("derived total = %v, want 500", got)
	}
	if got := TransactionTotalOnCreate(100, 5, f64(480)); got != 480 {
		t.Fatalf("explicit total = %v, want 480", got)
	}
	// zero is an explicit value, not an absent one
	if got := TransactionTotalOnCreate(100, 5, f64(0)); got != 0 {
		t.Fatalf("explicit zero total = %v, want 0", got)
	}
}

func TestTransactionTotalPatch(t *testing.T) {
	prior := &model.StockTransaction{Price: 100, Quantity: 5, TotalAmount: 500}

	if got := TransactionTotalPatch(prior, nil, nil, nil); got != nil {
		t.Fatalf("no constituents in patch, got %v, want nil", *got)
	}
	if got := TransactionTotalPatch(prior, f64(120), nil, nil); got == nil || *got != 600 {
		t.Fatalf("new price x prior quantity = %v, want 600", got)
	}
	if got := TransactionTotalPatch(prior, nil, i64(8), nil); got == nil || *got != 800 {
		t.Fatalf("prior price x new quantity = %v, want 800", got)
	}
	if got := TransactionTotalPatch(prior, f64(120), i64(8), nil); got == nil || *got != 960 {
		t.Fatalf("new price x new quantity = %v, want 960", got)
	}
	if got := TransactionTotalPatch(prior, f64(120), i64(8), f64(900)); got == nil || *got != 900 {
		t.Fatalf("explicit total wins, got %v, want 900", got)
	}
	if got := TransactionTotalPatch(prior, f64(0), nil, nil); got == nil || *got != 0 {
		t.Fatalf("explicit zero price recomputes, got %v, want 0", got)
	}
}

func TestCoinCapitalTotalOnCreate(t *testing.T) {
	if got := CoinCapitalTotalOnCreate(1000, 25, nil); got != 1025 {
		t.Fatalf("derived total = %v, want 1025", got)
	}
	if got := CoinCapitalTotalOnCreate(1000, 25, f64(1010)); got != 1010 {
		t.Fatalf("explicit total = %v, want 1010", got)
	}
}

func TestCoinCapitalTotalPatch(t *testing.T) {
	prior := &model.CoinCapital{Amount: 1000, TransactionCharge: 25, TotalAmount: 1025}

	if got := CoinCapitalTotalPatch(prior, nil, nil, nil); got != nil {
		t.Fatalf("no constituents in patch, got %v, want nil", *got)
	}
	if got := CoinCapitalTotalPatch(prior, f64(2000), nil, nil); got == nil || *got != 2025 {
		t.Fatalf("new amount + prior charge = %v, want 2025", got)
	}
	if got := CoinCapitalTotalPatch(prior, nil, f64(0), nil); got == nil || *got != 1000 {
		t.Fatalf("explicit zero charge recomputes, got %v, want 1000", got)
	}
	if got := CoinCapitalTotalPatch(prior, nil, nil, f64(999)); got == nil || *got != 999 {
		t.Fatalf("explicit total wins, got %v, want 999", got)
	}
}
