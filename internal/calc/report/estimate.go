// Package report renders a building estimate as a downloadable PDF or XLSX.
package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/format"
)

type Request struct {
	Project string `json:"project"`
	Title   string `json:"title"`
	building.Input
}

// UnmarshalJSON decodes the embedded input with its own lenient rules and
// then picks up the report fields.
func (r *Request) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Input); err != nil {
		return err
	}
	var meta struct {
		Project string `json:"project"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	r.Project, r.Title = meta.Project, meta.Title
	return nil
}

// Estimate is a calculated building estimate ready to render.
type Estimate struct {
	Reference string
	Title     string
	Project   string
	Generated time.Time
	Input     building.Input
	Result    building.Result
}

// Row is one line of the estimate table. Rate is zero for summary rows.
type Row struct {
	Item     string
	Quantity string
	Rate     float64
	Amount   float64
}

// NewEstimate validates and calculates req, stamping it with a fresh
// reference number.
func NewEstimate(req Request, now time.Time) (Estimate, error) {
	res, err := building.Calculate(req.Input)
	if err != nil {
		return Estimate{}, err
	}
	title := req.Title
	if title == "" {
		title = "Construction Cost Estimate"
	}
	return Estimate{
		Reference: "EST-" + uuid.NewString()[:8],
		Title:     title,
		Project:   req.Project,
		Generated: now,
		Input:     req.Input,
		Result:    res,
	}, nil
}

// MaterialRows prices each material at the rate actually used.
func (e Estimate) MaterialRows() []Row {
	m, r := e.Result.Materials, e.Result.RatesUsed
	return []Row{
		{Item: "Cement", Quantity: format.Quantity(m.Cement, 0, "bags"), Rate: r.Cement, Amount: m.Cement * r.Cement},
		{Item: "Steel", Quantity: format.Quantity(m.Steel, 0, "kg"), Rate: r.Steel, Amount: m.Steel * r.Steel},
		{Item: "Sand", Quantity: format.Quantity(m.Sand, 2, "m³"), Rate: r.Sand, Amount: m.Sand * r.Sand},
		{Item: "Aggregate", Quantity: format.Quantity(m.Aggregate, 2, "m³"), Rate: r.Aggregate, Amount: m.Aggregate * r.Aggregate},
	}
}

// SummaryRows lists the cost breakdown, ending with the total.
func (e Estimate) SummaryRows() []Row {
	c := e.Result.Costs
	return []Row{
		{Item: "Material Cost", Amount: c.MaterialCost},
		{Item: "Labor Cost", Amount: c.LaborCost},
		{Item: "Finishing Cost (" + string(e.Result.FinishingQuality) + ")", Amount: c.FinishingCost},
		{Item: "Subtotal", Amount: c.Subtotal},
		{Item: "Contingency (" + format.Number(e.Result.ContingencyPercent, 1) + "%)", Amount: c.ContingencyCost},
		{Item: "Total Cost", Amount: c.TotalCost},
	}
}

func (e Estimate) Filename(ext string) string {
	return e.Reference + "." + ext
}
