package service

import (
	"context"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/dao"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/logging"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

// CoinCapitalInput is the create/update payload for coin capital records.
// Pointer fields distinguish "omitted" from "explicitly set to zero".
type CoinCapitalInput struct {
	Date              *string  `json:"date"`
	Amount            *float64 `json:"amount"`
	TransactionCharge *float64 `json:"transactionCharge"`
	TotalAmount       *float64 `json:"totalAmount"`
}

type CoinCapitalService struct {
	dao dao.CoinCapitalDao
}

func NewCoinCapitalService(d dao.CoinCapitalDao) *CoinCapitalService {
	return &CoinCapitalService{dao: d}
}

func (s *CoinCapitalService) Create(ctx context.Context, in *CoinCapitalInput) Result {
	var v violations
	c := &model.CoinCapital{}

	if in.Date == nil {
		v.add("date", "Date is required")
	} else if d, err := parseDate(*in.Date); err != nil {
		v.add("date", err.Error())
	} else {
		c.Date = d
	}
	v.required("amount", "Amount", in.Amount != nil)
	v.nonNegative("amount", "Amount", in.Amount)
	if in.Amount != nil {
		c.Amount = *in.Amount
	}
	v.nonNegative("transactionCharge", "Transaction charge", in.TransactionCharge)
	if in.TransactionCharge != nil {
		c.TransactionCharge = *in.TransactionCharge
	}
	v.nonNegative("totalAmount", "Total amount", in.TotalAmount)
	if verr := v.err(); verr != nil {
		return failValidation(verr, "Failed to create coin capital record")
	}

	c.TotalAmount = CoinCapitalTotalOnCreate(c.Amount, c.TransactionCharge, in.TotalAmount)
	if err := s.dao.Create(ctx, c); err != nil {
		logging.Errorf(ctx, "coin capital create failed: %v", err)
		return failInternal(err, "Failed to create coin capital record")
	}
	return ok(c, "Coin capital record created successfully")
}

// List returns records in the date window, newest first, with a count and
// running totals over the filtered set.
func (s *CoinCapitalService) List(ctx context.Context, f *model.DateRangeFilters) Result {
	list, err := s.dao.List(ctx, f)
	if err != nil {
		logging.Errorf(ctx, "coin capital list failed: %v", err)
		return failInternal(err, "Failed to retrieve coin capital records")
	}
	count := len(list)
	totals := &model.CoinCapitalTotals{}
	for _, c := range list {
		totals.TotalAmount += c.Amount
		totals.TotalTransactionCharge += c.TransactionCharge
		totals.GrandTotal += c.TotalAmount
	}
	res := ok(list, "Coin capital records retrieved successfully")
	res.Count = &count
	res.Summary = totals
	return res
}

func (s *CoinCapitalService) GetByID(ctx context.Context, id int64) Result {
	c, err := s.dao.Get(ctx, id)
	if err != nil {
		return failStore(err, "Coin capital record not found", "Failed to retrieve coin capital record")
	}
	return ok(c, "Coin capital record retrieved successfully")
}

// Update applies a partial update. When amount or transactionCharge change
// and no explicit totalAmount accompanies them, the stored total is
// recomputed from the effective field set.
func (s *CoinCapitalService) Update(ctx context.Context, id int64, in *CoinCapitalInput) Result {
	patch := map[string]interface{}{}
	var v violations

	if in.Date != nil {
		if d, err := parseDate(*in.Date); err != nil {
			v.add("date", err.Error())
		} else {
			patch["date"] = d
		}
	}
	v.nonNegative("amount", "Amount", in.Amount)
	if in.Amount != nil {
		patch["amount"] = *in.Amount
	}
	v.nonNegative("transactionCharge", "Transaction charge", in.TransactionCharge)
	if in.TransactionCharge != nil {
		patch["transaction_charge"] = *in.TransactionCharge
	}
	v.nonNegative("totalAmount", "Total amount", in.TotalAmount)
	if verr := v.err(); verr != nil {
		return failValidation(verr, "Failed to update coin capital record")
	}

	if in.Amount != nil || in.TransactionCharge != nil || in.TotalAmount != nil {
		prior, err := s.dao.Get(ctx, id)
		if err != nil {
			return failStore(err, "Coin capital record not found", "Failed to update coin capital record")
		}
		if total := CoinCapitalTotalPatch(prior, in.Amount, in.TransactionCharge, in.TotalAmount); total != nil {
			patch["total_amount"] = *total
		}
	}

	updated, err := s.dao.Update(ctx, id, patch)
	if err != nil {
		logging.Errorf(ctx, "coin capital update failed: %v", err)
		return failStore(err, "Coin capital record not found", "Failed to update coin capital record")
	}
	return ok(updated, "Coin capital record updated successfully")
}

func (s *CoinCapitalService) Delete(ctx context.Context, id int64) Result {
	c, err := s.dao.Delete(ctx, id)
	if err != nil {
		return failStore(err, "Coin capital record not found", "Failed to delete coin capital record")
	}
	return ok(c, "Coin capital record deleted successfully")
}

// Summary reduces the full record set, sorted ascending by date, into totals,
// averages and date bounds. An empty set yields zeroes and null bounds.
func (s *CoinCapitalService) Summary(ctx context.Context) Result {
	capitals, err := s.dao.ListAllAscending(ctx)
	if err != nil {
		logging.Errorf(ctx, "coin capital summary query failed: %v", err)
		return failInternal(err, "Failed to retrieve coin capital summary")
	}
	if len(capitals) == 0 {
		return ok(&model.CoinCapitalSummary{}, "No coin capital records found")
	}

	summary := &model.CoinCapitalSummary{RecordCount: len(capitals)}
	for _, c := range capitals {
		summary.TotalAmount += c.Amount
		summary.TotalTransactionCharge += c.TransactionCharge
		summary.GrandTotal += c.TotalAmount
	}
	first := capitals[0].Date
	last := capitals[len(capitals)-1].Date
	summary.FirstInvestmentDate = &first
	summary.LastInvestmentDate = &last
	summary.AverageAmount = summary.TotalAmount / float64(len(capitals))
	summary.AverageTransactionCharge = summary.TotalTransactionCharge / float64(len(capitals))
	return ok(summary, "Coin capital summary retrieved successfully")
}
