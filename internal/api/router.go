package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/config"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/logging"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/metrics"
	"github.com/RohanPrasadGupta/stock-analysis-backend/internal/service"
)

// Dependencies are the services and optional collaborators injected into the
// router.
type Dependencies struct {
	Transactions *service.TransactionService
	StockCapital *service.StockCapitalService
	CoinCapital  *service.CoinCapitalService
	Metrics      *metrics.Metrics
}

func NewRouter(cfg config.ServerConfig, dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(accessLog)
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	if dep.Metrics != nil {
		r.Use(dep.Metrics.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	txCtrl := NewTransactionController(dep.Transactions)
	capitalCtrl := NewStockCapitalController(dep.StockCapital)
	coinCtrl := NewCoinCapitalController(dep.CoinCapital)

	getID := func(w http.ResponseWriter, r *http.Request) (int64, bool) {
		id, valid := parseID(chi.URLParam(r, "id"))
		if !valid {
			writeBadRequest(w, "Invalid id")
		}
		return id, valid
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", txCtrl.createTransaction)
			r.Get("/", txCtrl.listTransactions)
			r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					txCtrl.getTransaction(w, r, id)
				}
			})
			r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					txCtrl.updateTransaction(w, r, id)
				}
			})
			r.Patch("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					txCtrl.updateTransaction(w, r, id)
				}
			})
			r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					txCtrl.deleteTransaction(w, r, id)
				}
			})
		})
		r.Get("/portfolio/summary", txCtrl.portfolioSummary)

		r.Route("/capital", func(r chi.Router) {
			r.Post("/", capitalCtrl.createCapital)
			r.Get("/", capitalCtrl.listCapitals)
			// registered before /{id} so it is not shadowed
			r.Get("/summary/total", capitalCtrl.capitalSummary)
			r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					capitalCtrl.getCapital(w, r, id)
				}
			})
			r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					capitalCtrl.updateCapital(w, r, id)
				}
			})
			r.Patch("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					capitalCtrl.updateCapital(w, r, id)
				}
			})
			r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					capitalCtrl.deleteCapital(w, r, id)
				}
			})
		})

		r.Route("/coin-capital", func(r chi.Router) {
			r.Post("/", coinCtrl.createCapital)
			r.Get("/", coinCtrl.listCapitals)
			r.Get("/summary/total", coinCtrl.capitalSummary)
			r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					coinCtrl.getCapital(w, r, id)
				}
			})
			r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					coinCtrl.updateCapital(w, r, id)
				}
			})
			r.Patch("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					coinCtrl.updateCapital(w, r, id)
				}
			})
			r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
				if id, valid := getID(w, r); valid {
					coinCtrl.deleteCapital(w, r, id)
				}
			})
		})
	})

	return r
}

// accessLog stamps the chi request id into the context as the trace id and
// logs one line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := context.WithValue(r.Context(), logging.TraceIDKey, middleware.GetReqID(r.Context()))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		logging.Infof(ctx, "%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, HEAD")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
