package importer

import (
	"io"

	"Portfolio/internal/calc/building"
)

type BuildingImportResult struct {
	Count        int            `json:"count"`
	Results      []BuildingLine `json:"results"`
	Skipped      []Skipped      `json:"skipped"`
	SkippedCount int            `json:"skipped_count"`
	GrandTotal   float64        `json:"grand_total"`
}

type BuildingLine struct {
	Line   int             `json:"line"`
	Result building.Result `json:"result"`
}

// ImportBuilding parses a workbook and estimates each row. Rows that fail
// to parse or validate are skipped and listed with the reason.
func ImportBuilding(r io.Reader) (BuildingImportResult, error) {
	rows, skipped, err := ReadBuildingRows(r)
	if err != nil {
		return BuildingImportResult{}, err
	}
	out := BuildingImportResult{Results: make([]BuildingLine, 0, len(rows))}
	for _, row := range rows {
		res, err := building.Calculate(row.Input)
		if err != nil {
			skipped = append(skipped, Skipped{Line: row.Line, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, BuildingLine{Line: row.Line, Result: res})
		out.GrandTotal += res.Costs.TotalCost
	}
	out.Count = len(out.Results)
	out.Skipped = skipped
	out.SkippedCount = len(skipped)
	return out, nil
}
