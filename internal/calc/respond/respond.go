// Package respond writes calculator responses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Portfolio/internal/calc/validate"
)

type errorBody struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Message    string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// BadPayload answers a body that could not be decoded.
func BadPayload(w http.ResponseWriter) {
	JSON(w, http.StatusBadRequest, errorBody{Error: "invalid_payload", Message: "Invalid request payload"})
}

// CalcError answers a rejected calculation. Validation failures name the
// offending field; anything else is reported generically.
func CalcError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		JSON(w, http.StatusBadRequest, errorBody{
			Error:      "invalid_input",
			Field:      verr.Field,
			Constraint: verr.Constraint,
			Message:    verr.Error(),
		})
		return
	}
	slog.Warn("calculation failed", "error", err)
	JSON(w, http.StatusBadRequest, errorBody{Error: "calculation_error", Message: "Calculation error"})
}
