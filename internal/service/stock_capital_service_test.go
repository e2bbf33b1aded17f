package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

type stubStockCapitalDao struct {
	byID   map[int64]*model.StockCapital
	nextID int64
}

func newStubStockCapitalDao() *stubStockCapitalDao {
	return &stubStockCapitalDao{byID: map[int64]*model.StockCapital{}}
}

func (s *stubStockCapitalDao) Create(_ context.Context, c *model.StockCapital) error {
	s.nextID++
	c.ID = s.nextID
	cp := *c
	s.byID[c.ID] = &cp
	return nil
}

func (s *stubStockCapitalDao) Get(_ context.Context, id int64) (*model.StockCapital, error) {
	c, okk := s.byID[id]
	if !okk {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubStockCapitalDao) List(_ context.Context, f *model.DateRangeFilters) ([]*model.StockCapital, error) {
	var list []*model.StockCapital
	for _, c := range s.byID {
		if f != nil && f.StartDate != nil && c.Date.Before(*f.StartDate) {
			continue
		}
		if f != nil && f.EndDate != nil && c.Date.After(*f.EndDate) {
			continue
		}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *stubStockCapitalDao) ListAllAscending(_ context.Context) ([]*model.StockCapital, error) {
	var list []*model.StockCapital
	for _, c := range s.byID {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}

func (s *stubStockCapitalDao) Update(_ context.Context, id int64, patch map[string]interface{}) (*model.StockCapital, error) {
	c, okk := s.byID[id]
	if !okk {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range patch {
		switch k {
		case "date":
			c.Date = v.(time.Time)
		case "amount":
			c.Amount = v.(float64)
		}
	}
	cp := *c
	return &cp, nil
}

func (s *stubStockCapitalDao) Delete(_ context.Context, id int64) (*model.StockCapital, error) {
	c, okk := s.byID[id]
	if !okk {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.byID, id)
	return c, nil
}

func TestStockCapitalCreateValidation(t *testing.T) {
	svc := NewStockCapitalService(newStubStockCapitalDao())
	res := svc.Create(context.Background(), &StockCapitalInput{})
	if res.Success || res.Kind != FailureValidation {
		t.Fatalf("expected validation failure, got %+v", res)
	}

	res = svc.Create(context.Background(), &StockCapitalInput{Date: str("2024-01-15"), Amount: f64(10000)})
	if !res.Success {
		t.Fatalf("create failed: %s", res.Error)
	}
	if c := res.Data.(*model.StockCapital); c.Amount != 10000 {
		t.Fatalf("amount = %v", c.Amount)
	}
}

func TestStockCapitalListTotals(t *testing.T) {
	svc := NewStockCapitalService(newStubStockCapitalDao())
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2024-01-01"), Amount: f64(1000)})
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2024-02-01"), Amount: f64(2500)})
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2024-03-01"), Amount: f64(500)})

	res := svc.List(context.Background(), nil)
	if !res.Success {
		t.Fatalf("list failed: %s", res.Error)
	}
	if res.Count == nil || *res.Count != 3 {
		t.Fatalf("count = %v, want 3", res.Count)
	}
	if res.TotalAmount == nil || *res.TotalAmount != 4000 {
		t.Fatalf("totalAmount = %v, want 4000", res.TotalAmount)
	}
	list := res.Data.([]*model.StockCapital)
	if list[0].Amount != 500 {
		t.Fatalf("list not newest first: %+v", list[0])
	}
}

func TestStockCapitalListDateWindow(t *testing.T) {
	svc := NewStockCapitalService(newStubStockCapitalDao())
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2022-01-01"), Amount: f64(1000)})
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2022-01-31"), Amount: f64(2500)})
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2022-02-01"), Amount: f64(400)})

	start := time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC)
	res := svc.List(context.Background(), &model.DateRangeFilters{StartDate: &start})
	if res.Count == nil || *res.Count != 2 {
		t.Fatalf("count = %v, want 2 (start bound inclusive)", res.Count)
	}

	// a record dated exactly on the end bound is included, a later one is not
	end := time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC)
	res = svc.List(context.Background(), &model.DateRangeFilters{EndDate: &end})
	if res.Count == nil || *res.Count != 2 {
		t.Fatalf("count = %v, want 2 (end bound inclusive)", res.Count)
	}
	if res.TotalAmount == nil || *res.TotalAmount != 3500 {
		t.Fatalf("totalAmount = %v, want 3500 over [.., 2022-01-31]", res.TotalAmount)
	}
}

func TestStockCapitalSummary(t *testing.T) {
	svc := NewStockCapitalService(newStubStockCapitalDao())
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2024-03-01"), Amount: f64(3000)})
	svc.Create(context.Background(), &StockCapitalInput{Date: str("2024-01-01"), Amount: f64(1000)})

	res := svc.Summary(context.Background())
	if !res.Success {
		t.Fatalf("summary failed: %s", res.Error)
	}
	sum := res.Data.(*model.StockCapitalSummary)
	if sum.TotalCapital != 4000 || sum.RecordCount != 2 || sum.AverageInvestment != 2000 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.FirstInvestmentDate == nil || sum.FirstInvestmentDate.Month() != time.January {
		t.Fatalf("first date = %v", sum.FirstInvestmentDate)
	}
	if sum.LastInvestmentDate == nil || sum.LastInvestmentDate.Month() != time.March {
		t.Fatalf("last date = %v", sum.LastInvestmentDate)
	}
}

func TestStockCapitalSummaryEmpty(t *testing.T) {
	svc := NewStockCapitalService(newStubStockCapitalDao())
	res := svc.Summary(context.Background())
	if !res.Success {
		t.Fatalf("summary failed: %s", res.Error)
	}
	sum := res.Data.(*model.StockCapitalSummary)
	if sum.TotalCapital != 0 || sum.RecordCount != 0 {
		t.Fatalf("empty summary = %+v", sum)
	}
	if sum.FirstInvestmentDate != nil || sum.LastInvestmentDate != nil {
		t.Fatalf("empty summary has date bounds: %+v", sum)
	}
	if res.Message != "No capital records found" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestStockCapitalDeleteNotFound(t *testing.T) {
	svc := NewStockCapitalService(newStubStockCapitalDao())
	res := svc.Delete(context.Background(), 7)
	if res.Success || res.Kind != FailureNotFound {
		t.Fatalf("expected not found, got %+v", res)
	}
}
