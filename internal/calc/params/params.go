// Package params holds the process-wide estimation constants. Values are
// compiled in and read-only; callers receive copies.
package params

import "math"

// MaterialConstants is the consumption of each material per unit of
// built-up area.
type MaterialConstants struct {
	Cement    float64 `json:"cement"`    // bags
	Steel     float64 `json:"steel"`     // kg
	Sand      float64 `json:"sand"`      // m³ or cft, see profile
	Aggregate float64 `json:"aggregate"` // m³ or cft, see profile
	Bricks    float64 `json:"bricks"`    // nos, zero for framed work
}

// MaterialRates is a unit price for each material.
type MaterialRates struct {
	Cement    float64 `json:"cement"`
	Steel     float64 `json:"steel"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	Bricks    float64 `json:"bricks,omitempty"`
}

type FinishingQuality string

const (
	FinishingBasic    FinishingQuality = "basic"
	FinishingStandard FinishingQuality = "standard"
	FinishingPremium  FinishingQuality = "premium"
	FinishingLuxury   FinishingQuality = "luxury"
)

type SlabConstants struct {
	CementBagsPerM3 float64 `json:"cement_bags_per_m3"` // M20
	SteelDensity    float64 `json:"steel_density"`      // kg/m³
	SteelFraction   float64 `json:"steel_fraction"`     // of concrete volume
}

type Conversions struct {
	SqftToSqm float64 `json:"sqft_to_sqm"`
	FtToM     float64 `json:"ft_to_m"`
	M3ToCft   float64 `json:"m3_to_cft"`
}

// DetailedRates are the per-project-type construction rates (₹ per sq.ft) and
// the overhead shares applied to the construction cost. The coefficients are
// empirical guesses carried over from rate cards and were never verified
// against a structural design.
type DetailedRates struct {
	Construction     map[string]map[FinishingQuality]float64 `json:"construction"`
	Profiles         map[string]MaterialConstants            `json:"profiles"` // per ProfileBasis sq.ft
	Materials        MaterialRates                           `json:"materials"`
	LaborShare       float64                                 `json:"labor_share"`
	OverheadShare    float64                                 `json:"overhead_share"`
	ContingencyShare float64                                 `json:"contingency_share"`
	FinishingShare   float64                                 `json:"finishing_share"`
	ProfileBasis     float64                                 `json:"profile_basis"`
	Verified         bool                                    `json:"verified"`
}

// Config is the single configuration structure shared by every pipeline.
type Config struct {
	Materials          MaterialConstants            `json:"materials"`
	DefaultRates       MaterialRates                `json:"default_rates"`
	Finishing          map[FinishingQuality]float64 `json:"finishing"`
	LaborPercent       float64                      `json:"labor_percent"`
	ContingencyPercent float64                      `json:"contingency_percent"`
	Slab               SlabConstants                `json:"slab"`
	DefaultSlabFt      float64                      `json:"default_slab_thickness_ft"`
	Conversions        Conversions                  `json:"conversions"`
	Detailed           DetailedRates                `json:"detailed"`
}

// Default returns a fresh copy of the built-in configuration. Maps are
// rebuilt on every call so a caller cannot mutate shared state.
func Default() Config {
	return Config{
		Materials: MaterialConstants{
			Cement:    0.4,   // typical 0.38–0.42
			Steel:     4.0,   // residential 3.5–4.5
			Sand:      0.044, // 1.55 cft
			Aggregate: 0.088, // 3.1 cft
		},
		DefaultRates: MaterialRates{
			Cement:    420,
			Steel:     65,
			Sand:      1500,
			Aggregate: 1400,
		},
		Finishing: map[FinishingQuality]float64{
			FinishingBasic:    450,
			FinishingStandard: 750,
			FinishingPremium:  1200,
		},
		LaborPercent:       40,
		ContingencyPercent: 7,
		Slab: SlabConstants{
			CementBagsPerM3: 8,
			SteelDensity:    7850,
			SteelFraction:   0.01,
		},
		DefaultSlabFt: 0.41,
		Conversions: Conversions{
			SqftToSqm: 0.092903,
			FtToM:     0.3048,
			M3ToCft:   35.31,
		},
		Detailed: DetailedRates{
			Construction: map[string]map[FinishingQuality]float64{
				"residential": {
					FinishingBasic: 1200, FinishingStandard: 1600, FinishingPremium: 2200, FinishingLuxury: 3000,
				},
				"commercial": {
					FinishingBasic: 1400, FinishingStandard: 1900, FinishingPremium: 2600, FinishingLuxury: 3500,
				},
				"institutional": {
					FinishingBasic: 1300, FinishingStandard: 1700, FinishingPremium: 2400, FinishingLuxury: 3200,
				},
			},
			Profiles: map[string]MaterialConstants{
				"rcc":         {Cement: 0.45, Sand: 1.3, Aggregate: 2.6, Steel: 4.5},
				"loadbearing": {Cement: 0.35, Sand: 1.1, Aggregate: 2.2, Steel: 2.8, Bricks: 55},
				"mixed":       {Cement: 0.40, Sand: 1.2, Aggregate: 2.4, Steel: 3.6, Bricks: 30},
			},
			// cement per 50 kg bag, sand and aggregate per cft
			Materials: MaterialRates{
				Cement:    450,
				Steel:     70,
				Sand:      55,
				Aggregate: 65,
				Bricks:    9,
			},
			LaborShare:       0.35,
			OverheadShare:    0.15,
			ContingencyShare: 0.10,
			FinishingShare:   0.25,
			ProfileBasis:     100,
			Verified:         false,
		},
	}
}

// FinishingRate returns the per-area finishing rate for q. Unknown or empty
// qualities use the standard tier.
func (c Config) FinishingRate(q FinishingQuality) float64 {
	if r, ok := c.Finishing[q]; ok {
		return r
	}
	return c.Finishing[FinishingStandard]
}

// Usable reports whether v is a finite, non-negative number.
func Usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Resolve returns *v when it is present and usable, otherwise fallback.
func Resolve(v *float64, fallback float64) float64 {
	if v == nil || !Usable(*v) {
		return fallback
	}
	return *v
}
