package format

// BuildingFigures are the raw numbers of a building estimate.
type BuildingFigures struct {
	TotalCost       float64
	MaterialCost    float64
	LaborCost       float64
	FinishingCost   float64
	ContingencyCost float64
	Cement          float64
	Steel           float64
	Sand            float64
	Aggregate       float64
}

type BuildingView struct {
	TotalCost       string `json:"total_cost"`
	MaterialCost    string `json:"material_cost"`
	LaborCost       string `json:"labor_cost"`
	FinishingCost   string `json:"finishing_cost"`
	ContingencyCost string `json:"contingency_cost"`
	Cement          string `json:"cement"`
	Steel           string `json:"steel"`
	Sand            string `json:"sand"`
	Aggregate       string `json:"aggregate"`
}

func Building(f BuildingFigures) BuildingView {
	return BuildingView{
		TotalCost:       Currency(f.TotalCost),
		MaterialCost:    Currency(f.MaterialCost),
		LaborCost:       Currency(f.LaborCost),
		FinishingCost:   Currency(f.FinishingCost),
		ContingencyCost: Currency(f.ContingencyCost),
		Cement:          Quantity(f.Cement, 0, "bags"),
		Steel:           Quantity(f.Steel, 0, "kg"),
		Sand:            Quantity(f.Sand, 2, "m³"),
		Aggregate:       Quantity(f.Aggregate, 2, "m³"),
	}
}

type SlabView struct {
	Concrete string `json:"concrete"`
	Cement   string `json:"cement"`
	Steel    string `json:"steel"`
}

func Slab(concreteM3, cementBags, steelKg float64) SlabView {
	return SlabView{
		Concrete: Quantity(concreteM3, 2, "m³"),
		Cement:   Quantity(cementBags, 0, "bags"),
		Steel:    Quantity(steelKg, 0, "kg"),
	}
}

// Line is one labelled row of a result table.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Cost  string `json:"cost,omitempty"`
	Share string `json:"share,omitempty"`
}
