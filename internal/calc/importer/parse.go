// Package importer reads building inputs from an uploaded spreadsheet.
package importer

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/params"
)

var columns = []string{
	"area", "rate", "labor_auto", "labor_percent", "labor_manual", "finishing",
	"contingency", "cement", "steel", "sand", "aggregate",
}

// Columns returns the expected column order; the first sheet row is a header.
func Columns() []string {
	return slices.Clone(columns)
}

const (
	colArea = iota
	colRate
	colLaborAuto
	colLaborPercent
	colLaborManual
	colFinishing
	colContingency
	colCement
	colSteel
	colSand
	colAggregate
)

// Row is a parsed data row. Line is the 1-based sheet row.
type Row struct {
	Line  int
	Input building.Input
}

type Skipped struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ReadBuildingRows parses every data row on the first sheet. Rows that
// cannot be parsed are returned as skipped rather than failing the file.
func ReadBuildingRows(r io.Reader) ([]Row, []Skipped, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet has no data rows")
	}

	var parsed []Row
	var skipped []Skipped
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := parseBuildingRow(rows[i])
		if err != nil {
			skipped = append(skipped, Skipped{Line: i + 1, Reason: err.Error()})
			continue
		}
		parsed = append(parsed, Row{Line: i + 1, Input: in})
	}
	return parsed, skipped, nil
}

func parseBuildingRow(row []string) (building.Input, error) {
	if len(row) < 2 {
		return building.Input{}, fmt.Errorf("expected at least area and rate")
	}
	area, err := toFloat(row[colArea])
	if err != nil {
		return building.Input{}, fmt.Errorf("area: %w", err)
	}
	rate, err := toFloat(row[colRate])
	if err != nil {
		return building.Input{}, fmt.Errorf("rate: %w", err)
	}
	in := building.Input{AreaSqFt: area, RatePerSqFt: rate}

	if auto, ok, err := toBool(cell(row, colLaborAuto)); err != nil {
		return building.Input{}, fmt.Errorf("labor_auto: %w", err)
	} else if ok {
		in.LaborAuto = &auto
	}
	in.FinishingQuality = params.FinishingQuality(strings.ToLower(strings.TrimSpace(cell(row, colFinishing))))

	// Empty or non-numeric optional cells stay nil and take the default.
	optional := []struct {
		col int
		dst **float64
	}{
		{colLaborPercent, &in.LaborPercent},
		{colLaborManual, &in.LaborManual},
		{colContingency, &in.ContingencyPercent},
		{colCement, &in.MaterialRates.Cement},
		{colSteel, &in.MaterialRates.Steel},
		{colSand, &in.MaterialRates.Sand},
		{colAggregate, &in.MaterialRates.Aggregate},
	}
	for _, o := range optional {
		if v, err := toFloat(cell(row, o.col)); err == nil {
			*o.dst = &v
		}
	}
	return in, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// toBool accepts the usual spreadsheet spellings; ok is false for an
// empty cell.
func toBool(s string) (v, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, false, nil
	case "true", "yes", "y", "1", "auto":
		return true, true, nil
	case "false", "no", "n", "0", "manual":
		return false, true, nil
	}
	return false, false, fmt.Errorf("unrecognised value %q", s)
}
