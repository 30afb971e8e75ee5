package detailed

import (
	"math"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/validate"
)

type Input struct {
	ProjectType      string                  `json:"project_type"`      // residential, commercial, institutional
	ConstructionType string                  `json:"construction_type"` // rcc, loadbearing, mixed
	LengthFt         float64                 `json:"length"`
	WidthFt          float64                 `json:"width"`
	Floors           int                     `json:"floors"`
	FloorHeightFt    float64                 `json:"floor_height"`
	FinishQuality    params.FinishingQuality `json:"finish_quality"`
}

// Materials are whole ordering units: bags, cft, kg and bricks are all
// rounded up so an order never falls short.
type Materials struct {
	Cement    float64 `json:"cement"`    // bags
	Sand      float64 `json:"sand"`      // cft
	Aggregate float64 `json:"aggregate"` // cft
	Steel     float64 `json:"steel"`     // kg
	Bricks    float64 `json:"bricks"`    // nos
}

type CostItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"` // of the grand total
}

type Result struct {
	PlinthAreaSqFt   float64    `json:"plinth_area"`
	TotalAreaSqFt    float64    `json:"total_area"`
	WallAreaSqFt     float64    `json:"wall_area"`
	ConstructionRate float64    `json:"construction_rate"`
	ConstructionCost float64    `json:"construction_cost"`
	Materials        Materials  `json:"materials"`
	MaterialCosts    Materials  `json:"material_costs"`
	Breakdown        []CostItem `json:"breakdown"`
	GrandTotal       float64    `json:"grand_total"`
	CostPerSqFt      float64    `json:"cost_per_sqft"`
	Verified         bool       `json:"verified"`
	Notes            string     `json:"notes"`
}

func Validate(in Input) error {
	return validate.First(
		validate.Positive("length", in.LengthFt),
		validate.Positive("width", in.WidthFt),
		validate.PositiveInt("floors", in.Floors),
		validate.Positive("floor_height", in.FloorHeightFt),
	)
}

// constructionRate looks up the ₹/sq.ft rate, defaulting an unknown project
// type to residential and an unknown quality to standard.
func constructionRate(cfg params.Config, project string, q params.FinishingQuality) float64 {
	rates, ok := cfg.Detailed.Construction[project]
	if !ok {
		rates = cfg.Detailed.Construction["residential"]
	}
	if r, ok := rates[q]; ok {
		return r
	}
	return rates[params.FinishingStandard]
}

func profile(cfg params.Config, constructionType string) params.MaterialConstants {
	if p, ok := cfg.Detailed.Profiles[constructionType]; ok {
		return p
	}
	return cfg.Detailed.Profiles["rcc"]
}

// Estimate sizes the building from its plan dimensions. Quantities come from
// the same per-area estimator as the building calculator, scaled to the
// profile basis and rounded up.
func Estimate(cfg params.Config, in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	d := cfg.Detailed

	plinth := in.LengthFt * in.WidthFt
	total := plinth * float64(in.Floors)
	wall := 2 * (in.LengthFt + in.WidthFt) * in.FloorHeightFt * float64(in.Floors)

	rate := constructionRate(cfg, in.ProjectType, in.FinishQuality)
	construction := total * rate

	q := building.EstimateMaterials(total/d.ProfileBasis, profile(cfg, in.ConstructionType))
	m := Materials{
		Cement:    math.Ceil(q.Cement),
		Sand:      math.Ceil(q.Sand),
		Aggregate: math.Ceil(q.Aggregate),
		Steel:     math.Ceil(q.Steel),
		Bricks:    math.Ceil(q.Bricks),
	}
	mc := Materials{
		Cement:    m.Cement * d.Materials.Cement,
		Sand:      m.Sand * d.Materials.Sand,
		Aggregate: m.Aggregate * d.Materials.Aggregate,
		Steel:     m.Steel * d.Materials.Steel,
		Bricks:    m.Bricks * d.Materials.Bricks,
	}
	materialTotal := mc.Cement + mc.Sand + mc.Aggregate + mc.Steel + mc.Bricks

	items := []CostItem{
		{Name: "materials", Amount: materialTotal},
		{Name: "labor", Amount: construction * d.LaborShare},
		{Name: "overhead", Amount: construction * d.OverheadShare},
		{Name: "contingency", Amount: construction * d.ContingencyShare},
		{Name: "finishing", Amount: construction * d.FinishingShare},
	}
	var grand float64
	for _, it := range items {
		grand += it.Amount
	}
	for i := range items {
		if grand > 0 {
			items[i].Share = items[i].Amount / grand
		}
	}

	return Result{
		PlinthAreaSqFt:   plinth,
		TotalAreaSqFt:    total,
		WallAreaSqFt:     wall,
		ConstructionRate: rate,
		ConstructionCost: construction,
		Materials:        m,
		MaterialCosts:    mc,
		Breakdown:        items,
		GrandTotal:       grand,
		CostPerSqFt:      grand / total,
		Verified:         d.Verified,
		Notes:            "Rate-card coefficients; unverified empirical values, not a structural design.",
	}, nil
}

func Calculate(in Input) (Result, error) {
	return Estimate(params.Default(), in)
}
