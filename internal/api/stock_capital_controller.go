package api

import (
	"encoding/json"
	"net/http"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/model"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/service"
)

type StockCapitalController struct {
	svc *service.StockCapitalService
}

func NewStockCapitalController(svc *service.StockCapitalService) *StockCapitalController {
	return &StockCapitalController{svc: svc}
}

func (c *StockCapitalController) createCapital(w http.ResponseWriter, r *http.Request) {
	var in service.StockCapitalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	writeResult(w, http.StatusCreated, c.svc.Create(r.Context(), &in))
}

func (c *StockCapitalController) listCapitals(w http.ResponseWriter, r *http.Request) {
	filters := &model.DateRangeFilters{}
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

func (c *StockCapitalController) getCapital(w http.ResponseWriter, r *http.Request, id int64) {
	writeResult(w, http.StatusOK, c.svc.GetByID(r.Context(), id))
}

func (c *StockCapitalController) updateCapital(w http.ResponseWriter, r *http.Request, id int64) {
	var in service.StockCapitalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	writeResult(w, http.StatusOK, c.svc.Update(r.Context(), id, &in))
}

func (c *StockCapitalController) deleteCapital(w http.ResponseWriter, r *http.Request, id int64) {
	writeResult(w, http.StatusOK, c.svc.Delete(r.Context(), id))
}

func (c *StockCapitalController) capitalSummary(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, c.svc.Summary(r.Context()))
}
