// Package quick is the home-page estimate: a budget at a flat rate per sq.ft
// plus the per-area material quantities.
package quick

import (
	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/validate"
)

type Input struct {
	AreaSqFt    float64 `json:"area"`
	RatePerSqFt float64 `json:"rate"`
}

type Result struct {
	TotalCost float64                     `json:"total_cost"`
	Materials building.MaterialQuantities `json:"materials"`
}

func Calculate(in Input) (Result, error) {
	if err := validate.First(
		validate.Positive("area", in.AreaSqFt),
		validate.Positive("rate", in.RatePerSqFt),
	); err != nil {
		return Result{}, err
	}
	return Result{
		TotalCost: in.AreaSqFt * in.RatePerSqFt,
		Materials: building.EstimateMaterials(in.AreaSqFt, params.Default().Materials),
	}, nil
}
