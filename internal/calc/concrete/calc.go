package concrete

import (
	"fmt"
	"math"
	"sort"

	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/validate"
)

const (
	DryVolumeFactor = 1.54  // wet to dry volume
	BagVolumeM3     = 0.035 // one 50 kg cement bag
	WaterPerBagL    = 30.0
)

// Mix is a nominal mix by volume, cement first.
type Mix struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
}

func (m Mix) Parts() float64 { return m.Cement + m.Sand + m.Aggregate }

func (m Mix) String() string {
	return fmt.Sprintf("%g:%g:%g", m.Cement, m.Sand, m.Aggregate)
}

var mixes = map[string]Mix{
	"M10": {1, 3, 6},
	"M15": {1, 2, 4},
	"M20": {1, 1.5, 3},
	"M25": {1, 1, 2},
	"M30": {1, 0.75, 1.5},
}

// MixFor returns the nominal mix of grade. Mix is a value, so callers get a
// copy.
func MixFor(grade string) (Mix, bool) {
	m, ok := mixes[grade]
	return m, ok
}

// Grades lists the supported grades in ascending strength.
func Grades() []string {
	grades := make([]string, 0, len(mixes))
	for g := range mixes {
		grades = append(grades, g)
	}
	sort.Strings(grades)
	return grades
}

type Input struct {
	Grade    string  `json:"grade"`
	VolumeM3 float64 `json:"volume"`
}

type Quantities struct {
	CementBags   float64 `json:"cement_bags"`
	SandCft      float64 `json:"sand_cft"`
	AggregateCft float64 `json:"aggregate_cft"`
	WaterL       float64 `json:"water_liters"`
}

type Costs struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	Total     float64 `json:"total"`
}

type Result struct {
	Grade       string     `json:"grade"`
	Ratio       string     `json:"ratio"`
	VolumeM3    float64    `json:"volume"`
	DryVolumeM3 float64    `json:"dry_volume"`
	Quantities  Quantities `json:"quantities"`
	Costs       Costs      `json:"costs"`
	Notes       string     `json:"notes"`
}

func Validate(in Input) error {
	return validate.First(
		validate.OneOf("grade", in.Grade, Grades()...),
		validate.Positive("volume", in.VolumeM3),
	)
}

// Estimate splits the dry volume by the grade's mix ratio and prices the
// result at the detailed material rates. Water is not costed.
func Estimate(cfg params.Config, in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	mix, _ := MixFor(in.Grade)
	dry := in.VolumeM3 * DryVolumeFactor
	part := dry / mix.Parts()
	cft := cfg.Conversions.M3ToCft

	q := Quantities{
		CementBags:   math.Ceil(part * mix.Cement / BagVolumeM3),
		SandCft:      math.Ceil(part * mix.Sand * cft),
		AggregateCft: math.Ceil(part * mix.Aggregate * cft),
	}
	q.WaterL = q.CementBags * WaterPerBagL

	rates := cfg.Detailed.Materials
	c := Costs{
		Cement:    q.CementBags * rates.Cement,
		Sand:      q.SandCft * rates.Sand,
		Aggregate: q.AggregateCft * rates.Aggregate,
	}
	c.Total = c.Cement + c.Sand + c.Aggregate

	return Result{
		Grade:       in.Grade,
		Ratio:       mix.String(),
		VolumeM3:    in.VolumeM3,
		DryVolumeM3: dry,
		Quantities:  q,
		Costs:       c,
		Notes:       fmt.Sprintf("Add admixtures as per design requirements. Keep the water-cement ratio at 0.45-0.50 for %s concrete.", in.Grade),
	}, nil
}

func Calculate(in Input) (Result, error) {
	return Estimate(params.Default(), in)
}
