// Package notifications exposes the pending-work surface approvers poll when
// they connect: the authoritative badge count and the open notification list.
package notifications

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/finsuite/erp-approvals/pkg/api"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/handlers"
	"github.com/finsuite/erp-approvals/pkg/notify"
)

// Handler holds the dependencies for notification handlers.
type Handler struct {
	Dispatcher *notify.Dispatcher
}

// NewHandler creates a new notifications Handler.
func NewHandler(dispatcher *notify.Dispatcher) *Handler {
	return &Handler{Dispatcher: dispatcher}
}

// Routes mounts the notification routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/pending-count", h.PendingCount)
	r.Get("/", h.List)
}

// PendingCount returns the authoritative open-notification count for a role.
// Clients reconcile their live badge against this on connect.
func (h *Handler) PendingCount(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(r.URL.Query().Get("role_id"))
	if err != nil {
		handlers.WriteError(w, apperrors.Validation("role_id must be an integer"))
		return
	}

	count, err := h.Dispatcher.PendingCount(r.Context(), roleID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, api.PendingCountResponse{RoleID: roleID, Pending: count})
}

// List returns the open notifications addressed to a role.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(r.URL.Query().Get("role_id"))
	if err != nil {
		handlers.WriteError(w, apperrors.Validation("role_id must be an integer"))
		return
	}

	open, err := h.Dispatcher.Store.ListOpenForRole(r.Context(), roleID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, open)
}
