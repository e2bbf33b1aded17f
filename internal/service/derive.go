package service

import "github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"

// Derived totals are computed by explicit presence checks: a nil pointer
// means the field was omitted, a pointer to zero means it was set to zero.
// Truthiness is never used, so a legitimate zero price or zero charge still
// triggers recomputation.

// TransactionTotalOnCreate resolves the stored total for a new transaction:
// the explicit value when supplied, price*quantity otherwise.
func TransactionTotalOnCreate(price float64, quantity int64, explicitTotal *float64) float64 {
	if explicitTotal != nil {
		return *explicitTotal
	}
	return price * float64(quantity)
}

// TransactionTotalPatch decides whether a partial update must restate the
// stored total. It returns the value to write, or nil when the patch leaves
// the total untouched. Constituents absent from the patch are read from the
// prior persisted record.
func TransactionTotalPatch(prior *model.StockTransaction, price *float64, quantity *int64, explicitTotal *float64) *float64 {
	if explicitTotal != nil {
		return explicitTotal
	}
	if price == nil && quantity == nil {
		return nil
	}
	p := prior.Price
	if price != nil {
		p = *price
	}
	q := prior.Quantity
	if quantity != nil {
		q = *quantity
	}
	total := p * float64(q)
	return &total
}

// CoinCapitalTotalOnCreate resolves the stored total for a new coin capital
// record: the explicit value when supplied, amount+charge otherwise.
func CoinCapitalTotalOnCreate(amount, transactionCharge float64, explicitTotal *float64) float64 {
	if explicitTotal != nil {
		return *explicitTotal
	}
	return amount + transactionCharge
}

// CoinCapitalTotalPatch mirrors TransactionTotalPatch for coin capital
// records, deriving amount+transactionCharge from the effective field set.
func CoinCapitalTotalPatch(prior *model.CoinCapital, amount, transactionCharge, explicitTotal *float64) *float64 {
	if explicitTotal != nil {
		return explicitTotal
	}
	if amount == nil && transactionCharge == nil {
		return nil
	}
	a := prior.Amount
	if amount != nil {
		a = *amount
	}
	c := prior.TransactionCharge
	if transactionCharge != nil {
		c = *transactionCharge
	}
	total := a + c
	return &total
}
