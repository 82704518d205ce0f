package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/fastprodman/miniledger/internal/repos/accounts"
	"github.com/fastprodman/miniledger/internal/services/transfer"
)

// sampleSeeds is the fixed account set created by POST /setup-accounts.
// Balances are minor units.
var sampleSeeds = []accounts.Seed{
	{Name: "Alice", Balance: 1000},
	{Name: "Bob", Balance: 1000},
	{Name: "Carol", Balance: 1000},
	{Name: "Dave", Balance: 1000},
}

// HandlerProvider wraps the store and transfer engine and exposes HTTP
// handlers.
type HandlerProvider struct {
	store  accounts.Store
	engine *transfer.Engine
}

// NewHandler returns a new handler provider.
func NewHandler(store accounts.Store, engine *transfer.Engine) *HandlerProvider {
	return &HandlerProvider{store: store, engine: engine}
}

// --- Helpers ---

// accountResponse is the wire form of an account. The version counter is
// internal and never serialized.
type accountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

func toAccountResponses(accts []accounts.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accts))
	for _, a := range accts {
		out = append(out, accountResponse{
			ID:      a.ID.String(),
			Name:    a.Name,
			Balance: a.Balance,
		})
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- Handlers ---

// SetupAccountsHandler handles POST /setup-accounts: clears the ledger
// and creates the sample account set.
func (h *HandlerProvider) SetupAccountsHandler(w http.ResponseWriter, r *http.Request) {
	created, err := h.store.Reset(r.Context(), sampleSeeds)
	if err != nil {
		slog.Error("setup accounts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponses(created))
}

// GetAccountsHandler handles GET /accounts.
func (h *HandlerProvider) GetAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accts, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("list accounts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeJSON(w, http.StatusOK, toAccountResponses(accts))
}

// TransferHandler handles POST /transfer.
func (h *HandlerProvider) TransferHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	var raw transfer.RawRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")

		return
	}

	req, err := transfer.ParseRequest(raw)
	if err != nil {
		observeTransfer("invalid")
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	res, err := h.engine.Transfer(r.Context(), req)
	if err != nil {
		h.writeTransferError(w, err)
		return
	}

	observeTransfer("success")
	transferAmount.Observe(float64(req.Amount))

	writeJSON(w, http.StatusOK, map[string]int64{
		"senderNewBalance":   res.SenderNewBalance,
		"receiverNewBalance": res.ReceiverNewBalance,
	})
}

func (h *HandlerProvider) writeTransferError(w http.ResponseWriter, err error) {
	var insufficient *transfer.InsufficientFundsError
	var notFound *transfer.NotFoundError

	switch {
	case errors.As(err, &insufficient):
		observeTransfer("insufficient_funds")
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":            "insufficient funds",
			"currentBalance":   insufficient.CurrentBalance,
			"amountToTransfer": insufficient.AmountToTransfer,
		})
	case errors.As(err, &notFound):
		observeTransfer("not_found")
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, accounts.ErrVersionConflict):
		observeTransfer("conflict")
		writeError(w, http.StatusConflict, "transfer conflicted with a concurrent update, retry")
	default:
		observeTransfer("error")
		slog.Error("transfer failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
