package slab

import (
	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/validate"
)

type Input struct {
	AreaSqFt    float64 `json:"slab_area"`
	ThicknessFt float64 `json:"slab_thickness"`
}

type Result struct {
	AreaSqM          float64 `json:"area_sqm"`
	ThicknessM       float64 `json:"thickness_m"`
	ConcreteVolumeM3 float64 `json:"concrete_volume_m3"`
	CementBags       float64 `json:"cement_required"`
	SteelKg          float64 `json:"steel_required"`
	Notes            string  `json:"notes"`
}

// EstimateSlab converts an area in sq.ft and a thickness in ft to the
// concrete, cement and steel of an M20 slab.
func EstimateSlab(cfg params.Config, areaSqFt, thicknessFt float64) Result {
	areaSqM := areaSqFt * cfg.Conversions.SqftToSqm
	thicknessM := thicknessFt * cfg.Conversions.FtToM
	volume := areaSqM * thicknessM
	return Result{
		AreaSqM:          areaSqM,
		ThicknessM:       thicknessM,
		ConcreteVolumeM3: volume,
		CementBags:       volume * cfg.Slab.CementBagsPerM3,
		SteelKg:          volume * cfg.Slab.SteelDensity * cfg.Slab.SteelFraction,
		Notes:            "M20 slab, steel at 1% of concrete volume. Empirical, not a reinforcement design.",
	}
}

// Calculate validates in and estimates with the built-in configuration.
// Any positive thickness is accepted, however thin or thick.
func Calculate(in Input) (Result, error) {
	if err := validate.First(
		validate.Positive("slab_area", in.AreaSqFt),
		validate.Positive("slab_thickness", in.ThicknessFt),
	); err != nil {
		return Result{}, err
	}
	return EstimateSlab(params.Default(), in.AreaSqFt, in.ThicknessFt), nil
}
