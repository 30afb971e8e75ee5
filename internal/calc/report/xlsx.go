package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"Portfolio/internal/format"
)

const sheetName = "Estimate"

// GenerateExcel writes the estimate to a single styled sheet.
func GenerateExcel(e Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]
	widths := []float64{6, 34, 16, 16, 20}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	itemStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(e.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	f.SetCellValue(sheetName, "A2", "Ref: "+e.Reference)
	f.SetCellValue(sheetName, "A3", "Date: "+e.Generated.Format("2006-01-02"))
	if e.Project != "" {
		f.SetCellValue(sheetName, "C2", sanitizeExcelCell("Project: "+e.Project))
	}
	f.SetCellValue(sheetName, "C3", fmt.Sprintf("Area: %s sq.ft", format.Number(e.Input.AreaSqFt, 0)))

	for i, h := range []string{"#", "Material", "Quantity", "Rate", "Amount"} {
		f.SetCellValue(sheetName, columns[i]+"5", h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	row := 6
	for i, r := range e.MaterialRows() {
		n := fmt.Sprint(row)
		f.SetCellValue(sheetName, "A"+n, i+1)
		f.SetCellValue(sheetName, "B"+n, r.Item)
		f.SetCellValue(sheetName, "C"+n, r.Quantity)
		f.SetCellValue(sheetName, "D"+n, format.Currency(r.Rate))
		f.SetCellValue(sheetName, "E"+n, format.Currency(r.Amount))
		f.SetCellStyle(sheetName, "A"+n, lastCol+n, itemStyle)
		row++
	}

	row++
	for _, r := range e.SummaryRows() {
		n := fmt.Sprint(row)
		f.SetCellValue(sheetName, "D"+n, r.Item+":")
		f.SetCellValue(sheetName, "E"+n, format.Currency(r.Amount))
		f.SetCellStyle(sheetName, "D"+n, "E"+n, totalStyle)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell stops user text from being read as a formula.
func sanitizeExcelCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
