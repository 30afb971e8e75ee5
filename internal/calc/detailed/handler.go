package detailed

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

// Lines renders the material rows followed by the cost rows.
func Lines(res Result) []format.Line {
	lines := []format.Line{
		{Label: "Total area", Value: format.Quantity(res.TotalAreaSqFt, 0, "sq.ft")},
		{Label: "Cost per sq.ft", Value: format.Currency(res.CostPerSqFt)},
		{Label: "Cement", Value: format.Quantity(res.Materials.Cement, 0, "bags"), Cost: format.Currency(res.MaterialCosts.Cement)},
		{Label: "Sand", Value: format.Quantity(res.Materials.Sand, 0, "cft"), Cost: format.Currency(res.MaterialCosts.Sand)},
		{Label: "Aggregate", Value: format.Quantity(res.Materials.Aggregate, 0, "cft"), Cost: format.Currency(res.MaterialCosts.Aggregate)},
		{Label: "Steel", Value: format.Quantity(res.Materials.Steel, 0, "kg"), Cost: format.Currency(res.MaterialCosts.Steel)},
	}
	if res.Materials.Bricks > 0 {
		lines = append(lines, format.Line{
			Label: "Bricks",
			Value: format.Quantity(res.Materials.Bricks, 0, "nos"),
			Cost:  format.Currency(res.MaterialCosts.Bricks),
		})
	}
	for _, it := range res.Breakdown {
		lines = append(lines, format.Line{
			Label: capitalize(it.Name),
			Value: format.Currency(it.Amount),
			Share: format.Percent(it.Share, 1),
		})
	}
	return append(lines, format.Line{Label: "Grand total", Value: format.Currency(res.GrandTotal)})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
