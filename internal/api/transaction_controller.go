package api

import (
	"encoding/json"
	"net/http"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/service"
)

type TransactionController struct {
	svc *service.TransactionService
}

func NewTransactionController(svc *service.TransactionService) *TransactionController {
	return &TransactionController{svc: svc}
}

func (c *TransactionController) createTransaction(w http.ResponseWriter, r *http.Request) {
	var in service.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	writeResult(w, http.StatusCreated, c.svc.Create(r.Context(), &in))
}

func (c *TransactionController) listTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &model.TransactionListFilters{
		StockSymbol: q.Get("stockSymbol"),
		Type:        q.Get("type"),
	}
	var okParse bool
	if filters.StartDate, okParse = parseDateQuery(r, "startDate"); !okParse {
		writeBadRequest(w, "Invalid startDate")
		return
	}
	if filters.EndDate, okParse = parseDateQuery(r, "endDate"); !okParse {
		writeBadRequest(w, "Invalid endDate")
		return
	}
	writeResult(w, http.StatusOK, c.svc.List(r.Context(), filters))
}

func (c *TransactionController) getTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	writeResult(w, http.StatusOK, c.svc.GetByID(r.Context(), id))
}

func (c *TransactionController) updateTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	var in service.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	writeResult(w, http.StatusOK, c.svc.Update(r.Context(), id, &in))
}

func (c *TransactionController) deleteTransaction(w http.ResponseWriter, r *http.Request, id int64) {
	writeResult(w, http.StatusOK, c.svc.Delete(r.Context(), id))
}

func (c *TransactionController) portfolioSummary(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, c.svc.PortfolioSummary(r.Context()))
}
