package concrete

import (
	"encoding/json"
	"net/http"

	"Portfolio/internal/calc/respond"
	"Portfolio/internal/format"
)

type Handler struct{}

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
		Display []format.Line `json:"display"`
	}{res, Lines(res)})
}

func Lines(res Result) []format.Line {
	q, c := res.Quantities, res.Costs
	return []format.Line{
		{Label: "Cement", Value: format.Quantity(q.CementBags, 0, "bags"), Cost: format.Currency(c.Cement)},
		{Label: "Sand", Value: format.Quantity(q.SandCft, 0, "cft"), Cost: format.Currency(c.Sand)},
		{Label: "Aggregate", Value: format.Quantity(q.AggregateCft, 0, "cft"), Cost: format.Currency(c.Aggregate)},
		{Label: "Water", Value: format.Quantity(q.WaterL, 0, "liters")},
		{Label: "Total", Cost: format.Currency(c.Total)},
	}
}
