package materials

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
	lines := make([]format.Line, 0, len(res.Items))
	for _, it := range res.Items {
		lines = append(lines, format.Line{Label: it.Name, Value: format.Quantity(it.Value, 0, it.Unit)})
	}
	respond.JSON(w, http.StatusOK, struct {
		Result
		Display []format.Line `json:"display"`
	}{res, lines})
}
