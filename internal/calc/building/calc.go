package building

import (
	"strings"

	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/validate"
)

type LaborMode string

const (
	LaborAuto   LaborMode = "auto"
	LaborManual LaborMode = "manual"
)

// RateOverrides are optional per-material prices. A nil or unusable entry
// falls back to the configured default for that material only.
type RateOverrides struct {
	Cement    *float64 `json:"cement,omitempty"`
	Steel     *float64 `json:"steel,omitempty"`
	Sand      *float64 `json:"sand,omitempty"`
	Aggregate *float64 `json:"aggregate,omitempty"`
}

type Input struct {
	AreaSqFt           float64                 `json:"area"`
	RatePerSqFt        float64                 `json:"rate"`
	LaborMode          LaborMode               `json:"labor_mode"`
	LaborAuto          *bool                   `json:"labor_auto,omitempty"`
	LaborPercent       *float64                `json:"labor_percent,omitempty"`
	LaborManual        *float64                `json:"labor_manual,omitempty"`
	FinishingQuality   params.FinishingQuality `json:"finishing_quality"`
	ContingencyPercent *float64                `json:"contingency_percent,omitempty"`
	MaterialRates      RateOverrides           `json:"material_rates"`
}

type MaterialQuantities struct {
	Cement    float64 `json:"cement"`    // bags
	Steel     float64 `json:"steel"`     // kg
	Sand      float64 `json:"sand"`      // m³
	Aggregate float64 `json:"aggregate"` // m³
	Bricks    float64 `json:"bricks,omitempty"`
}

// CostBreakdown always satisfies
// TotalCost == MaterialCost + LaborCost + FinishingCost + ContingencyCost.
type CostBreakdown struct {
	MaterialCost    float64 `json:"material_cost"`
	LaborCost       float64 `json:"labor_cost"`
	FinishingCost   float64 `json:"finishing_cost"`
	Subtotal        float64 `json:"subtotal"`
	ContingencyCost float64 `json:"contingency_cost"`
	TotalCost       float64 `json:"total_cost"`
}

type Result struct {
	Materials          MaterialQuantities      `json:"materials"`
	RatesUsed          params.MaterialRates    `json:"rates_used"`
	Costs              CostBreakdown           `json:"costs"`
	LaborMode          LaborMode               `json:"labor_mode"`
	FinishingQuality   params.FinishingQuality `json:"finishing_quality"`
	ContingencyPercent float64                 `json:"contingency_percent"`
	RateCost           float64                 `json:"rate_cost"`
	CostPerSqFt        float64                 `json:"cost_per_sqft"`
	Notes              string                  `json:"notes"`
}

// Mode returns the labor mode. LaborAuto decides when set; otherwise
// LaborMode is matched without regard to case and anything but "manual"
// means auto.
func (in Input) Mode() LaborMode {
	if in.LaborAuto != nil {
		if *in.LaborAuto {
			return LaborAuto
		}
		return LaborManual
	}
	if strings.EqualFold(strings.TrimSpace(string(in.LaborMode)), string(LaborManual)) {
		return LaborManual
	}
	return LaborAuto
}

// EstimateMaterials scales each per-area constant by area. No rounding is
// applied; presentation decides how many decimals to show.
func EstimateMaterials(area float64, c params.MaterialConstants) MaterialQuantities {
	return MaterialQuantities{
		Cement:    area * c.Cement,
		Steel:     area * c.Steel,
		Sand:      area * c.Sand,
		Aggregate: area * c.Aggregate,
		Bricks:    area * c.Bricks,
	}
}

// ResolveRates merges overrides with defaults material by material.
func ResolveRates(o RateOverrides, defaults params.MaterialRates) params.MaterialRates {
	return params.MaterialRates{
		Cement:    params.Resolve(o.Cement, defaults.Cement),
		Steel:     params.Resolve(o.Steel, defaults.Steel),
		Sand:      params.Resolve(o.Sand, defaults.Sand),
		Aggregate: params.Resolve(o.Aggregate, defaults.Aggregate),
		Bricks:    defaults.Bricks,
	}
}

// AggregateCost prices quantities and adds labor, finishing and
// contingency. Optional percentages that are missing or unusable fall back
// to cfg; it never fails.
func AggregateCost(cfg params.Config, q MaterialQuantities, rates params.MaterialRates, in Input) CostBreakdown {
	material := q.Cement*rates.Cement +
		q.Steel*rates.Steel +
		q.Sand*rates.Sand +
		q.Aggregate*rates.Aggregate +
		q.Bricks*rates.Bricks

	var labor float64
	if in.Mode() == LaborAuto {
		labor = material * (params.Resolve(in.LaborPercent, cfg.LaborPercent) / 100)
	} else {
		labor = params.Resolve(in.LaborManual, 0)
	}

	finishing := in.AreaSqFt * cfg.FinishingRate(in.FinishingQuality)
	subtotal := material + labor + finishing
	contingency := subtotal * (params.Resolve(in.ContingencyPercent, cfg.ContingencyPercent) / 100)

	return CostBreakdown{
		MaterialCost:    material,
		LaborCost:       labor,
		FinishingCost:   finishing,
		Subtotal:        subtotal,
		ContingencyCost: contingency,
		TotalCost:       subtotal + contingency,
	}
}

// Validate checks the required fields only. Optional percentages, manual
// labor and rate overrides are never rejected: unusable values fall back to
// defaults in AggregateCost and ResolveRates.
func Validate(in Input) error {
	return validate.First(
		validate.Positive("area", in.AreaSqFt),
		validate.Positive("rate", in.RatePerSqFt),
	)
}

// Estimate runs the full building pipeline against cfg.
func Estimate(cfg params.Config, in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	q := EstimateMaterials(in.AreaSqFt, cfg.Materials)
	rates := ResolveRates(in.MaterialRates, cfg.DefaultRates)
	costs := AggregateCost(cfg, q, rates, in)

	quality := in.FinishingQuality
	if _, ok := cfg.Finishing[quality]; !ok {
		quality = params.FinishingStandard
	}
	return Result{
		Materials:          q,
		RatesUsed:          rates,
		Costs:              costs,
		LaborMode:          in.Mode(),
		FinishingQuality:   quality,
		ContingencyPercent: params.Resolve(in.ContingencyPercent, cfg.ContingencyPercent),
		RateCost:           in.AreaSqFt * in.RatePerSqFt,
		CostPerSqFt:        costs.TotalCost / in.AreaSqFt,
		Notes:              "Empirical per-area estimate for RCC framed structures; not a structural design.",
	}, nil
}

// Calculate estimates with the built-in configuration.
func Calculate(in Input) (Result, error) {
	return Estimate(params.Default(), in)
}
