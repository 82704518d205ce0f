package api

import (
	_ "embed"
	"net/http"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/fastprodman/miniledger/internal/services/transfer"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static/index.html
var indexHTML []byte

// NewRouter constructs the router with all API endpoints registered.
func NewRouter(store accounts.Store, engine *transfer.Engine) http.Handler {
	h := NewHandler(store, engine)
	r := chi.NewRouter()

	r.Use(metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})

	r.Post("/setup-accounts", h.SetupAccountsHandler)
	r.Get("/accounts", h.GetAccountsHandler)
	r.Post("/transfer", h.TransferHandler)

	return r
}
