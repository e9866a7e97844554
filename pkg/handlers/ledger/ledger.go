// Package ledger exposes read access to derived accounting records.
package ledger

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/handlers"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

const defaultListLimit = 50

// Handler holds the dependencies for ledger handlers.
type Handler struct {
	Ledger   storage.LedgerStore
	Invoices storage.InvoiceStore
}

// NewHandler creates a new ledger Handler.
func NewHandler(ledgerStore storage.LedgerStore, invoices storage.InvoiceStore) *Handler {
	return &Handler{Ledger: ledgerStore, Invoices: invoices}
}

// Routes mounts the ledger routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/entries", h.ListEntries)
	r.Get("/invoices/{subClientID}", h.ListInvoices)
}

// ListEntries returns the most recent derived ledger entries.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	limit := int32(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			handlers.WriteError(w, apperrors.Validation("limit must be a positive integer"))
			return
		}
		limit = int32(parsed)
	}

	entries, err := h.Ledger.ListLedgerEntries(r.Context(), limit)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, entries)
}

// ListInvoices returns the invoices raised for a sub-client.
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	subClientID := chi.URLParam(r, "subClientID")

	invoices, err := h.Invoices.ListInvoicesBySubClient(r.Context(), subClientID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, invoices)
}
