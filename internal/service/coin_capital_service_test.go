package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

type stubCoinCapitalDao struct {
	byID   map[int64]*model.CoinCapital
	nextID int64
}

func newStubCoinCapitalDao() *stubCoinCapitalDao {
	return &stubCoinCapitalDao{byID: map[int64]*model.CoinCapital{}}
}

func (s *stubCoinCapitalDao) Create(_ context.Context, c *model.CoinCapital) error {
	s.nextID++
	c.ID = s.nextID
	cp := *c
	s.byID[c.ID] = &cp
	return nil
}

func (s *stubCoinCapitalDao) Get(_ context.Context, id int64) (*model.CoinCapital, error) {
	c, okk := s.byID[id]
	if !okk {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubCoinCapitalDao) List(_ context.Context, f *model.DateRangeFilters) ([]*model.CoinCapital, error) {
	var list []*model.CoinCapital
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

func (s *stubCoinCapitalDao) ListAllAscending(_ context.Context) ([]*model.CoinCapital, error) {
	var list []*model.CoinCapital
	for _, c := range s.byID {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}

func (s *stubCoinCapitalDao) Update(_ context.Context, id int64, patch map[string]interface{}) (*model.CoinCapital, error) {
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
		case "transaction_charge":
			c.TransactionCharge = v.(float64)
		case "total_amount":
			c.TotalAmount = v.(float64)
		}
	}
	cp := *c
	return &cp, nil
}

func (s *stubCoinCapitalDao) Delete(_ context.Context, id int64) (*model.CoinCapital, error) {
	c, okk := s.byID[id]
	if !okk {
		return nil, gorm.ErrRecordNotFound
	}
	delete(s.byID, id)
	return c, nil
}

func TestCoinCapitalCreateDefaultsChargeAndDerivesTotal(t *testing.T) {
	svc := NewCoinCapitalService(newStubCoinCapitalDao())
	res := svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-01-15"), Amount: f64(1000)})
	if !res.Success {
		t.Fatalf("create failed: %s", res.Error)
	}
	c := res.Data.(*model.CoinCapital)
	if c.TransactionCharge != 0 {
		t.Fatalf("charge = %v, want default 0", c.TransactionCharge)
	}
	if c.TotalAmount != 1000 {
		t.Fatalf("totalAmount = %v, want amount + charge = 1000", c.TotalAmount)
	}

	res = svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-01-16"), Amount: f64(1000), TransactionCharge: f64(25)})
	if c := res.Data.(*model.CoinCapital); c.TotalAmount != 1025 {
		t.Fatalf("totalAmount = %v, want 1025", c.TotalAmount)
	}
}

func TestCoinCapitalUpdateRecomputesTotal(t *testing.T) {
	svc := NewCoinCapitalService(newStubCoinCapitalDao())
	svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-01-15"), Amount: f64(1000), TransactionCharge: f64(25)})

	res := svc.Update(context.Background(), 1, &CoinCapitalInput{Amount: f64(2000)})
	if !res.Success {
		t.Fatalf("update failed: %s", res.Error)
	}
	c := res.Data.(*model.CoinCapital)
	if c.TotalAmount != 2025 {
		t.Fatalf("totalAmount = %v, want new amount + prior charge = 2025", c.TotalAmount)
	}

	// zeroing the charge is an explicit change and must recompute
	res = svc.Update(context.Background(), 1, &CoinCapitalInput{TransactionCharge: f64(0)})
	if c := res.Data.(*model.CoinCapital); c.TotalAmount != 2000 {
		t.Fatalf("totalAmount = %v, want 2000 after zeroed charge", c.TotalAmount)
	}
}

func TestCoinCapitalListAttachesTotals(t *testing.T) {
	svc := NewCoinCapitalService(newStubCoinCapitalDao())
	svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-01-01"), Amount: f64(1000), TransactionCharge: f64(10)})
	svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-02-01"), Amount: f64(500), TransactionCharge: f64(5)})

	res := svc.List(context.Background(), nil)
	if !res.Success {
		t.Fatalf("list failed: %s", res.Error)
	}
	if res.Count == nil || *res.Count != 2 {
		t.Fatalf("count = %v, want 2", res.Count)
	}
	totals := res.Summary.(*model.CoinCapitalTotals)
	if totals.TotalAmount != 1500 || totals.TotalTransactionCharge != 15 || totals.GrandTotal != 1515 {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestCoinCapitalSummary(t *testing.T) {
	svc := NewCoinCapitalService(newStubCoinCapitalDao())
	svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-02-01"), Amount: f64(3000), TransactionCharge: f64(30)})
	svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-01-01"), Amount: f64(1000), TransactionCharge: f64(10)})

	res := svc.Summary(context.Background())
	if !res.Success {
		t.Fatalf("summary failed: %s", res.Error)
	}
	sum := res.Data.(*model.CoinCapitalSummary)
	if sum.TotalAmount != 4000 || sum.TotalTransactionCharge != 40 || sum.GrandTotal != 4040 {
		t.Fatalf("summary totals = %+v", sum)
	}
	if sum.AverageAmount != 2000 || sum.AverageTransactionCharge != 20 {
		t.Fatalf("summary averages = %+v", sum)
	}
	if sum.FirstInvestmentDate == nil || sum.FirstInvestmentDate.Month() != time.January {
		t.Fatalf("first date = %v", sum.FirstInvestmentDate)
	}
}

func TestCoinCapitalSummaryEmpty(t *testing.T) {
	svc := NewCoinCapitalService(newStubCoinCapitalDao())
	res := svc.Summary(context.Background())
	if !res.Success {
		t.Fatalf("summary failed: %s", res.Error)
	}
	sum := res.Data.(*model.CoinCapitalSummary)
	if sum.RecordCount != 0 || sum.FirstInvestmentDate != nil {
		t.Fatalf("empty summary = %+v", sum)
	}
	if res.Message != "No coin capital records found" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestCoinCapitalNegativeChargeRejected(t *testing.T) {
	svc := NewCoinCapitalService(newStubCoinCapitalDao())
	res := svc.Create(context.Background(), &CoinCapitalInput{Date: str("2024-01-15"), Amount: f64(1000), TransactionCharge: f64(-5)})
	if res.Success || res.Kind != FailureValidation {
		t.Fatalf("expected validation failure, got %+v", res)
	}
}
