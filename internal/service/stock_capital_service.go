package service

import (
	"context"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/dao"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/logging"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

// StockCapitalInput is the create/update payload for stock capital records.
type StockCapitalInput struct {
	Date   *string  `json:"date"`
	Amount *float64 `json:"amount"`
}

type StockCapitalService struct {
	dao dao.StockCapitalDao
}

func NewStockCapitalService(d dao.StockCapitalDao) *StockCapitalService {
	return &StockCapitalService{dao: d}
}

func (s *StockCapitalService) Create(ctx context.Context, in *StockCapitalInput) Result {
	var v violations
	c := &model.StockCapital{}

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
	if verr := v.err(); verr != nil {
		return failValidation(verr, "Failed to create capital record")
	}

	if err := s.dao.Create(ctx, c); err != nil {
		logging.Errorf(ctx, "stock capital create failed: %v", err)
		return failInternal(err, "Failed to create capital record")
	}
	return ok(c, "Capital record created successfully")
}

// List returns records in the date window, newest first, with a count and
// the total amount invested over the filtered set.
func (s *StockCapitalService) List(ctx context.Context, f *model.DateRangeFilters) Result {
	list, err := s.dao.List(ctx, f)
	if err != nil {
		logging.Errorf(ctx, "stock capital list failed: %v", err)
		return failInternal(err, "Failed to retrieve capital records")
	}
	count := len(list)
	var total float64
	for _, c := range list {
		total += c.Amount
	}
	res := ok(list, "Capital records retrieved successfully")
	res.Count = &count
	res.TotalAmount = &total
	return res
}

func (s *StockCapitalService) GetByID(ctx context.Context, id int64) Result {
	c, err := s.dao.Get(ctx, id)
	if err != nil {
		return failStore(err, "Capital record not found", "Failed to retrieve capital record")
	}
	return ok(c, "Capital record retrieved successfully")
}

func (s *StockCapitalService) Update(ctx context.Context, id int64, in *StockCapitalInput) Result {
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
	if verr := v.err(); verr != nil {
		return failValidation(verr, "Failed to update capital record")
	}

	updated, err := s.dao.Update(ctx, id, patch)
	if err != nil {
		logging.Errorf(ctx, "stock capital update failed: %v", err)
		return failStore(err, "Capital record not found", "Failed to update capital record")
	}
	return ok(updated, "Capital record updated successfully")
}

func (s *StockCapitalService) Delete(ctx context.Context, id int64) Result {
	c, err := s.dao.Delete(ctx, id)
	if err != nil {
		return failStore(err, "Capital record not found", "Failed to delete capital record")
	}
	return ok(c, "Capital record deleted successfully")
}

// Summary reduces the full record set, sorted ascending by date, into totals
// and date bounds. An empty set yields zeroes and null bounds.
func (s *StockCapitalService) Summary(ctx context.Context) Result {
	capitals, err := s.dao.ListAllAscending(ctx)
	if err != nil {
		logging.Errorf(ctx, "stock capital summary query failed: %v", err)
		return failInternal(err, "Failed to retrieve capital summary")
	}
	if len(capitals) == 0 {
		return ok(&model.StockCapitalSummary{}, "No capital records found")
	}

	var total float64
	for _, c := range capitals {
		total += c.Amount
	}
	first := capitals[0].Date
	last := capitals[len(capitals)-1].Date
	summary := &model.StockCapitalSummary{
		TotalCapital:        total,
		RecordCount:         len(capitals),
		FirstInvestmentDate: &first,
		LastInvestmentDate:  &last,
		AverageInvestment:   total / float64(len(capitals)),
	}
	return ok(summary, "Capital summary retrieved successfully")
}
