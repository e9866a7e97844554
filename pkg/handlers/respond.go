// Package handlers wires the HTTP boundary: request decoding, error-to-status
// mapping and the uniform response envelope. Workflow semantics live in
// pkg/workflow; nothing here mutates state directly.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finsuite/erp-approvals/pkg/api"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
)

// WriteData writes a success envelope.
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, api.Envelope{Success: true, Data: data})
}

// WriteMessage writes a success envelope with a message and data.
func WriteMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, api.Envelope{Success: true, Message: message, Data: data})
}

// WriteError maps a core error to an HTTP status and writes the failure
// envelope. Unrecognised errors become opaque 500s; their detail only goes to
// the log.
func WriteError(w http.ResponseWriter, err error) {
	var (
		validation *apperrors.ValidationError
		notFound   *apperrors.NotFoundError
		duplicate  *apperrors.DuplicateError
		dependency *apperrors.DependencyError
	)

	switch {
	case errors.As(err, &validation):
		writeFailure(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		writeFailure(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		writeFailure(w, http.StatusConflict, duplicate.Error())
	case errors.As(err, &dependency):
		writeFailure(w, http.StatusUnprocessableEntity, dependency.Error())
	default:
		slog.Error("request failed", "error", err)
		writeFailure(w, http.StatusInternalServerError, "internal error")
	}
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.Envelope{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
