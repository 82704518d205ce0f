package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/fastprodman/miniledger/internal/services/transfer"
)

// NewServer creates a configured *http.Server for the ledger API.
func NewServer(port uint16, store accounts.Store, engine *transfer.Engine) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(store, engine),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
