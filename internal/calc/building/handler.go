package building

import (
	"encoding/json"
	"net/http"

	"Portfolio/internal/calc/respond"
	"Portfolio/internal/format"
)

type Handler struct{}

type response struct {
	Result
	Display format.BuildingView `json:"display"`
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
	respond.JSON(w, http.StatusOK, response{Result: res, Display: View(res)})
}

// View renders a result for display.
func View(res Result) format.BuildingView {
	return format.Building(format.BuildingFigures{
		TotalCost:       res.Costs.TotalCost,
		MaterialCost:    res.Costs.MaterialCost,
		LaborCost:       res.Costs.LaborCost,
		FinishingCost:   res.Costs.FinishingCost,
		ContingencyCost: res.Costs.ContingencyCost,
		Cement:          res.Materials.Cement,
		Steel:           res.Materials.Steel,
		Sand:            res.Materials.Sand,
		Aggregate:       res.Materials.Aggregate,
	})
}
