// Package approvals exposes the approval workflow over HTTP. Every approvable
// entity type shares the same route shape; the entity type in the path picks
// the workflow definition.
package approvals

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/finsuite/erp-approvals/pkg/api"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/handlers"
	"github.com/finsuite/erp-approvals/pkg/mapping"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/workflow"
)

// Handler holds the dependencies for approval-related handlers.
type Handler struct {
	Engine *workflow.Engine
}

// NewHandler creates a new approvals Handler.
func NewHandler(engine *workflow.Engine) *Handler {
	return &Handler{Engine: engine}
}

// Routes mounts the shared route shape for all entity types.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/{entityType}", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/verification", h.ListForVerification)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/history", h.History)
		r.Post("/{id}/verify", h.Verify)
		r.Post("/{id}/reject", h.Reject)
	})
}

// Create submits a new entity into its approval workflow.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "entityType"))

	var req api.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, apperrors.Validation("invalid request body: %v", err))
		return
	}

	entity, err := mapping.ToDomainEntity(entityType, req.Entity)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	created, err := h.Engine.Create(r.Context(), entityType, entity, mapping.ToDomainActor(req.Actor), req.Remarks)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusCreated, "submitted for verification", created)
}

// Get retrieves an entity in any lifecycle state.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "entityType"))
	id := chi.URLParam(r, "id")

	if _, err := h.Engine.Registry.Lookup(entityType); err != nil {
		handlers.WriteError(w, err)
		return
	}
	entity, err := h.Engine.Entities.GetEntity(r.Context(), entityType, id)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, entity)
}

// ListForVerification returns the entities awaiting the calling role.
func (h *Handler) ListForVerification(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "entityType"))

	roleID, err := strconv.Atoi(r.URL.Query().Get("role_id"))
	if err != nil {
		handlers.WriteError(w, apperrors.Validation("role_id must be an integer"))
		return
	}

	entities, err := h.Engine.ListForVerification(r.Context(), entityType, roleID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, entities)
}

// Verify records an approval at the entity's current level.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "entityType"))
	id := chi.URLParam(r, "id")

	var req api.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, apperrors.Validation("invalid request body: %v", err))
		return
	}

	result, err := h.Engine.Verify(r.Context(), entityType, id, mapping.ToDomainActor(req.Actor), req.Remarks)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	// A failed side effect never rolls back the approval, so it is reported
	// inside a success envelope rather than as an HTTP failure.
	message := "verified"
	if result.SideEffectErr != nil {
		message = result.SideEffectErr.Error()
	}
	handlers.WriteMessage(w, http.StatusOK, message, mapping.ToVerifyResponse(result))
}

// Reject terminates the entity's approval lifecycle.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "entityType"))
	id := chi.URLParam(r, "id")

	var req api.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, apperrors.Validation("invalid request body: %v", err))
		return
	}

	entity, err := h.Engine.Reject(r.Context(), entityType, id, mapping.ToDomainActor(req.Actor), req.Remarks)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteMessage(w, http.StatusOK, "rejected", entity)
}

// History returns the approval trail of an entity.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entityType := models.EntityType(chi.URLParam(r, "entityType"))
	id := chi.URLParam(r, "id")

	trail, err := h.Engine.History(r.Context(), entityType, id)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteData(w, http.StatusOK, trail)
}
