package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/service"
)

// writeResult renders a service envelope, picking the status code from the
// failure class rather than the message content.
func writeResult(w http.ResponseWriter, successStatus int, res service.Result) {
	status := successStatus
	if !res.Success {
		switch res.Kind {
		case service.FailureValidation:
			status = http.StatusBadRequest
		case service.FailureNotFound:
			status = http.StatusNotFound
		default:
			status = http.StatusInternalServerError
		}
	}
	writeJSON(w, status, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, service.Result{Success: false, Message: message})
}

func parseID(idParam string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(idParam), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseDateQuery reads an optional date query parameter, accepting
// YYYY-MM-DD or RFC3339.
func parseDateQuery(r *http.Request, key string) (*time.Time, bool) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	return nil, false
}
