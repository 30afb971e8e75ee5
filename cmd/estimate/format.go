package main

import (
	"encoding/json"
	"fmt"
	"io"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/concrete"
	"Portfolio/internal/calc/detailed"
	"Portfolio/internal/calc/materials"
	"Portfolio/internal/calc/quick"
	"Portfolio/internal/calc/slab"
	"Portfolio/internal/format"
)

func output[T any](w io.Writer, v T, render func(io.Writer, T)) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	render(w, v)
	return nil
}

func printBuilding(w io.Writer, res building.Result) {
	v := building.View(res)
	fmt.Fprintln(w, "MATERIALS")
	fmt.Fprintf(w, "  %-12s %s\n", "Cement", v.Cement)
	fmt.Fprintf(w, "  %-12s %s\n", "Steel", v.Steel)
	fmt.Fprintf(w, "  %-12s %s\n", "Sand", v.Sand)
	fmt.Fprintf(w, "  %-12s %s\n", "Aggregate", v.Aggregate)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COST")
	fmt.Fprintf(w, "  %-12s %s\n", "Material", v.MaterialCost)
	fmt.Fprintf(w, "  %-12s %s\n", "Labor", v.LaborCost)
	fmt.Fprintf(w, "  %-12s %s\n", "Finishing", v.FinishingCost)
	fmt.Fprintf(w, "  %-12s %s\n", "Contingency", v.ContingencyCost)
	fmt.Fprintf(w, "  %-12s %s\n", "TOTAL", v.TotalCost)
	fmt.Fprintf(w, "\n  %s per sq.ft\n", format.Currency(res.CostPerSqFt))
}

func printSlab(w io.Writer, res slab.Result) {
	v := format.Slab(res.ConcreteVolumeM3, res.CementBags, res.SteelKg)
	fmt.Fprintf(w, "  %-10s %s\n", "Concrete", v.Concrete)
	fmt.Fprintf(w, "  %-10s %s\n", "Cement", v.Cement)
	fmt.Fprintf(w, "  %-10s %s\n", "Steel", v.Steel)
}

func printQuick(w io.Writer, res quick.Result) {
	fmt.Fprintf(w, "Estimated cost: %s\n", format.Currency(res.TotalCost))
	fmt.Fprintf(w, "  cement %s, steel %s\n",
		format.Quantity(res.Materials.Cement, 0, "bags"),
		format.Quantity(res.Materials.Steel, 0, "kg"))
}

func printDetailed(w io.Writer, res detailed.Result) {
	fmt.Fprintf(w, "Built-up area %s sq.ft at %s per sq.ft\n",
		format.Number(res.TotalAreaSqFt, 0), format.Currency(res.ConstructionRate))
	printLines(w, detailed.Lines(res))
	if !res.Verified {
		fmt.Fprintf(w, "\nNote: %s\n", res.Notes)
	}
}

func printMaterials(w io.Writer, res materials.Result) {
	fmt.Fprintf(w, "%s, %s sq.ft\n", res.Title, format.Number(res.AreaSqFt, 0))
	for _, it := range res.Items {
		fmt.Fprintf(w, "  %-14s %s\n", it.Name, format.Quantity(it.Value, 0, it.Unit))
	}
}

func printConcrete(w io.Writer, res concrete.Result) {
	fmt.Fprintf(w, "%s (%s), %s m³\n", res.Grade, res.Ratio, format.Number(res.VolumeM3, 2))
	printLines(w, concrete.Lines(res))
}

func printLines(w io.Writer, lines []format.Line) {
	for _, l := range lines {
		fmt.Fprintf(w, "  %-14s %-14s %s\n", l.Label, l.Value, l.Cost)
	}
}
