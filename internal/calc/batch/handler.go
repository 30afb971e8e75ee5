package batch

import (
	"encoding/json"
	"errors"
	"net/http"

	"Portfolio/internal/calc/respond"
	"Portfolio/internal/calc/validate"
)

type Handler struct{}

type itemErrorBody struct {
	Error      string `json:"error"`
	Index      int    `json:"index"`
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Message    string `json:"message"`
}

func (h *Handler) Building(w http.ResponseWriter, r *http.Request) {
	var input BuildingBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	res, err := CalculateBuilding(input)
	var itemErr *ItemError
	switch {
	case errors.As(err, &itemErr):
		body := itemErrorBody{Error: "invalid_input", Index: itemErr.Index, Message: itemErr.Error()}
		var verr *validate.Error
		if errors.As(itemErr.Err, &verr) {
			body.Field, body.Constraint = verr.Field, verr.Constraint
		}
		respond.JSON(w, http.StatusBadRequest, body)
	case err != nil:
		respond.CalcError(w, err)
	default:
		respond.JSON(w, http.StatusOK, res)
	}
}
