package materials

import (
	"math"

	"Portfolio/internal/calc/validate"
)

type WorkType string

const (
	Brickwork9 WorkType = "brickwork"
	Brickwork4 WorkType = "brickwork4"
	Plaster    WorkType = "plaster"
	Flooring   WorkType = "flooring"
	RCC        WorkType = "rcc"
)

var titles = map[WorkType]string{
	Brickwork9: `Brick Masonry (9" wall)`,
	Brickwork4: `Brick Masonry (4.5" wall)`,
	Plaster:    "Cement Plaster",
	Flooring:   "Flooring Work",
	RCC:        "RCC Work",
}

type Input struct {
	WorkType    WorkType `json:"work_type"`
	LengthFt    float64  `json:"length"`
	WidthFt     float64  `json:"width"`
	ThicknessIn *float64 `json:"thickness,omitempty"`
}

type Item struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Result struct {
	WorkType WorkType `json:"work_type"`
	Title    string   `json:"title"`
	AreaSqFt float64  `json:"area"`
	Items    []Item   `json:"items"`
}

func Calculate(in Input) (Result, error) {
	if err := validate.First(
		validate.OneOf("work_type", string(in.WorkType),
			string(Brickwork9), string(Brickwork4), string(Plaster), string(Flooring), string(RCC)),
		validate.Positive("length", in.LengthFt),
		validate.Positive("width", in.WidthFt),
	); err != nil {
		return Result{}, err
	}
	thickness := DefaultThicknessIn
	if in.ThicknessIn != nil && *in.ThicknessIn > 0 {
		thickness = *in.ThicknessIn
	}
	area := in.LengthFt * in.WidthFt

	var items []Item
	switch in.WorkType {
	case Brickwork9:
		items = brickwork(area, 9)
	case Brickwork4:
		items = brickwork(area, 4.5)
	case Plaster:
		items = plaster(area, thickness)
	case Flooring:
		items = flooring(area, thickness)
	case RCC:
		items = rcc(area, thickness)
	}
	return Result{WorkType: in.WorkType, Title: titles[in.WorkType], AreaSqFt: area, Items: items}, nil
}

func brickwork(area, wallIn float64) []Item {
	perSqFt := BricksPerSqFt4In
	if wallIn == 9 {
		perSqFt = BricksPerSqFt9In
	}
	mortar := area * (wallIn / 12) * MortarFraction
	return []Item{
		{Name: "Bricks", Value: math.Ceil(area * perSqFt), Unit: "nos"},
		{Name: "Cement", Value: math.Ceil(mortar * CementBagsPerCft), Unit: "bags"},
		{Name: "Sand", Value: math.Ceil(mortar * SandCftPerCft), Unit: "cft"},
	}
}

func plaster(area, thicknessIn float64) []Item {
	wet := area * (thicknessIn / 12) * PlasterWetFactor
	return []Item{
		{Name: "Cement", Value: math.Ceil(wet * CementBagsPerCft), Unit: "bags"},
		{Name: "Sand", Value: math.Ceil(wet * SandCftPerCft), Unit: "cft"},
		{Name: "Coverage", Value: area, Unit: "sqft"},
	}
}

func flooring(area, thicknessIn float64) []Item {
	volume := area * (thicknessIn / 12)
	return []Item{
		{Name: "Cement", Value: math.Ceil(volume * FloorCementPerCft), Unit: "bags"},
		{Name: "Sand", Value: math.Ceil(volume * FloorSandPerCft), Unit: "cft"},
		{Name: "Tiles/Marble", Value: math.Ceil(area * TileWastageFactor), Unit: "sqft"},
	}
}

func rcc(area, thicknessIn float64) []Item {
	dry := (area * thicknessIn / 12) * ConcreteDryFactor
	return []Item{
		{Name: "Cement", Value: math.Ceil(dry * RCCCementPerCft), Unit: "bags"},
		{Name: "Sand", Value: math.Ceil(dry * RCCSandPerCft), Unit: "cft"},
		{Name: "Aggregate", Value: math.Ceil(dry * RCCAggregatePerCft), Unit: "cft"},
		{Name: "Steel", Value: math.Ceil(area * RCCSteelPerSqFt), Unit: "kg"},
	}
}
