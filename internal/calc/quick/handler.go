package quick

import (
	"encoding/json"
	"net/http"

	"Portfolio/internal/calc/respond"
	"Portfolio/internal/format"
)

type Handler struct{}

type display struct {
	TotalCost string `json:"total_cost"`
	Cement    string `json:"cement"`
	Steel     string `json:"steel"`
	Sand      string `json:"sand"`
	Aggregate string `json:"aggregate"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		respond.CalcError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, struct {
		Result
		Display display `json:"display"`
	}{res, display{
		TotalCost: format.Currency(res.TotalCost),
		Cement:    format.Quantity(res.Materials.Cement, 0, "bags"),
		Steel:     format.Quantity(res.Materials.Steel, 0, "kg"),
		Sand:      format.Quantity(res.Materials.Sand, 2, "m³"),
		Aggregate: format.Quantity(res.Materials.Aggregate, 2, "m³"),
	}})
}
