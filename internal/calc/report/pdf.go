package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"Portfolio/internal/format"
)

// The core PDF fonts are cp1252; the rupee sign is not in that code page.
func pdfMoney(v float64) string {
	return strings.Replace(format.Currency(v), "₹", "Rs. ", 1)
}

// GeneratePDF lays the estimate out on a single A4 page.
func GeneratePDF(e Estimate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(e.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(e.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if e.Project != "" {
		pdf.Cell(0, 6, tr("Project: "+e.Project))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Ref: "+e.Reference)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+e.Generated.Format("2006-01-02"))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Built-up area: %s sq.ft at %s per sq.ft",
		format.Number(e.Input.AreaSqFt, 0), pdfMoney(e.Input.RatePerSqFt))))
	pdf.Ln(10)

	widths := []float64{60, 40, 40, 50}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(51, 51, 51)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Material", "Quantity", "Rate", "Amount"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, r := range e.MaterialRows() {
		pdf.CellFormat(widths[0], 7, r.Item, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(r.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, pdfMoney(r.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, pdfMoney(r.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	summary := e.SummaryRows()
	for i, r := range summary {
		style := ""
		if i == len(summary)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(140, 7, r.Item, "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, pdfMoney(r.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(e.Result.Notes), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
