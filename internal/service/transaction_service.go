package service

import (
	"context"
	"strings"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/dao"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/logging"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
)

// TransactionInput is the create/update payload for stock transactions.
// Pointer fields distinguish "omitted" from "explicitly set to zero".
type TransactionInput struct {
	StockSymbol  *string  `json:"stockSymbol"`
	StockName    *string  `json:"stockName"`
	Type         *string  `json:"type"`
	Price        *float64 `json:"price"`
	Quantity     *int64   `json:"quantity"`
	TotalAmount  *float64 `json:"totalAmount"`
	InvestedDate *string  `json:"investedDate"`
}

type TransactionService struct {
	dao dao.TransactionDao
}

func NewTransactionService(d dao.TransactionDao) *TransactionService {
	return &TransactionService{dao: d}
}

func (s *TransactionService) validateCreate(in *TransactionInput) (*model.StockTransaction, *ValidationError) {
	var v violations
	t := &model.StockTransaction{}

	symbol := ""
	if in.StockSymbol != nil {
		symbol = strings.ToUpper(strings.TrimSpace(*in.StockSymbol))
	}
	v.required("stockSymbol", "Stock symbol", symbol != "")
	t.StockSymbol = symbol

	name := ""
	if in.StockName != nil {
		name = strings.TrimSpace(*in.StockName)
	}
	v.required("stockName", "Stock name", name != "")
	t.StockName = name

	if in.Type == nil {
		v.add("type", "Transaction type is required")
	} else {
		typ := model.TransactionType(strings.ToUpper(strings.TrimSpace(*in.Type)))
		if typ != model.TransactionBuy && typ != model.TransactionSell {
			v.add("type", "Type must be either BUY or SELL")
		}
		t.Type = typ
	}

	v.required("price", "Price", in.Price != nil)
	v.nonNegative("price", "Price", in.Price)
	if in.Price != nil {
		t.Price = *in.Price
	}

	if in.Quantity == nil {
		v.add("quantity", "Quantity is required")
	} else if *in.Quantity < 1 {
		v.add("quantity", "Quantity must be at least 1")
	} else {
		t.Quantity = *in.Quantity
	}

	v.nonNegative("totalAmount", "Total amount", in.TotalAmount)

	if in.InvestedDate == nil {
		v.add("investedDate", "Invested date is required")
	} else if d, err := parseDate(*in.InvestedDate); err != nil {
		v.add("investedDate", err.Error())
	} else {
		t.InvestedDate = d
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	t.TotalAmount = TransactionTotalOnCreate(t.Price, t.Quantity, in.TotalAmount)
	return t, nil
}

// Create validates and persists a new transaction, deriving totalAmount when
// the caller did not supply one.
func (s *TransactionService) Create(ctx context.Context, in *TransactionInput) Result {
	t, verr := s.validateCreate(in)
	if verr != nil {
		return failValidation(verr, "Failed to create transaction")
	}
	if err := s.dao.Create(ctx, t); err != nil {
		logging.Errorf(ctx, "transaction create failed: %v", err)
		return failInternal(err, "Failed to create transaction")
	}
	return ok(t, "Transaction created successfully")
}

// List returns transactions matching the filters, newest first, with a count.
// Symbol and type filters are uppercased before matching.
func (s *TransactionService) List(ctx context.Context, f *model.TransactionListFilters) Result {
	if f == nil {
		f = &model.TransactionListFilters{}
	}
	f.StockSymbol = strings.ToUpper(strings.TrimSpace(f.StockSymbol))
	f.Type = strings.ToUpper(strings.TrimSpace(f.Type))

	list, err := s.dao.List(ctx, f)
	if err != nil {
		logging.Errorf(ctx, "transaction list failed: %v", err)
		return failInternal(err, "Failed to retrieve transactions")
	}
	count := len(list)
	res := ok(list, "Transactions retrieved successfully")
	res.Count = &count
	return res
}

func (s *TransactionService) GetByID(ctx context.Context, id int64) Result {
	t, err := s.dao.Get(ctx, id)
	if err != nil {
		return failStore(err, "Transaction not found", "Failed to retrieve transaction")
	}
	return ok(t, "Transaction retrieved successfully")
}

// Update applies a partial update. When price or quantity change and no
// explicit totalAmount accompanies them, the stored total is recomputed from
// the effective field set (patch value if present, prior value otherwise).
func (s *TransactionService) Update(ctx context.Context, id int64, in *TransactionInput) Result {
	patch := map[string]interface{}{}
	var v violations

	if in.StockSymbol != nil {
		symbol := strings.ToUpper(strings.TrimSpace(*in.StockSymbol))
		if symbol == "" {
			v.add("stockSymbol", "Stock symbol is required")
		}
		patch["stock_symbol"] = symbol
	}
	if in.StockName != nil {
		name := strings.TrimSpace(*in.StockName)
		if name == "" {
			v.add("stockName", "Stock name is required")
		}
		patch["stock_name"] = name
	}
	if in.Type != nil {
		typ := model.TransactionType(strings.ToUpper(strings.TrimSpace(*in.Type)))
		if typ != model.TransactionBuy && typ != model.TransactionSell {
			v.add("type", "Type must be either BUY or SELL")
		}
		patch["type"] = typ
	}
	v.nonNegative("price", "Price", in.Price)
	if in.Price != nil {
		patch["price"] = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			v.add("quantity", "Quantity must be at least 1")
		}
		patch["quantity"] = *in.Quantity
	}
	v.nonNegative("totalAmount", "Total amount", in.TotalAmount)
	if in.InvestedDate != nil {
		if d, err := parseDate(*in.InvestedDate); err != nil {
			v.add("investedDate", err.Error())
		} else {
			patch["invested_date"] = d
		}
	}
	if verr := v.err(); verr != nil {
		return failValidation(verr, "Failed to update transaction")
	}

	if in.Price != nil || in.Quantity != nil || in.TotalAmount != nil {
		prior, err := s.dao.Get(ctx, id)
		if err != nil {
			return failStore(err, "Transaction not found", "Failed to update transaction")
		}
		if total := TransactionTotalPatch(prior, in.Price, in.Quantity, in.TotalAmount); total != nil {
			patch["total_amount"] = *total
		}
	}

	updated, err := s.dao.Update(ctx, id, patch)
	if err != nil {
		logging.Errorf(ctx, "transaction update failed: %v", err)
		return failStore(err, "Transaction not found", "Failed to update transaction")
	}
	return ok(updated, "Transaction updated successfully")
}

func (s *TransactionService) Delete(ctx context.Context, id int64) Result {
	t, err := s.dao.Delete(ctx, id)
	if err != nil {
		return failStore(err, "Transaction not found", "Failed to delete transaction")
	}
	return ok(t, "Transaction deleted successfully")
}

// PortfolioSummary folds the full transaction set into one holding per
// symbol. BUY adds to the running quantity and invested amount, SELL
// subtracts; output follows the first-encounter order of symbols.
func (s *TransactionService) PortfolioSummary(ctx context.Context) Result {
	transactions, err := s.dao.ListAll(ctx)
	if err != nil {
		logging.Errorf(ctx, "portfolio summary query failed: %v", err)
		return failInternal(err, "Failed to retrieve portfolio summary")
	}

	bySymbol := make(map[string]*model.PortfolioHolding)
	var order []string
	for _, t := range transactions {
		h, seen := bySymbol[t.StockSymbol]
		if !seen {
			h = &model.PortfolioHolding{StockSymbol: t.StockSymbol, StockName: t.StockName}
			bySymbol[t.StockSymbol] = h
			order = append(order, t.StockSymbol)
		}
		switch t.Type {
		case model.TransactionBuy:
			h.TotalQuantity += t.Quantity
			h.TotalInvested += t.TotalAmount
		case model.TransactionSell:
			h.TotalQuantity -= t.Quantity
			h.TotalInvested -= t.TotalAmount
		}
		h.Transactions = append(h.Transactions, t)
	}

	holdings := make([]*model.PortfolioHolding, 0, len(order))
	for _, symbol := range order {
		holdings = append(holdings, bySymbol[symbol])
	}
	return ok(holdings, "Portfolio summary retrieved successfully")
}
