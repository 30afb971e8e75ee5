package importer

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"Portfolio/internal/calc/building"
)

func workbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func header() []any {
	cols := Columns()
	h := make([]any, len(cols))
	for i, c := range cols {
		h[i] = c
	}
	return h
}

func TestReadBuildingRows(t *testing.T) {
	data := workbook(t, [][]any{
		header(),
		{1000, 1500, "yes", 40, "", "standard", 7, "", "", "", ""},
		{"abc", 1500},
		{},
		{800, 1400, "no", "", 250000, "Premium", "", 450, 70, "", ""},
	})
	rows, skipped, err := ReadBuildingRows(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if len(skipped) != 1 || skipped[0].Line != 3 {
		t.Errorf("skipped = %+v", skipped)
	}

	first := rows[0].Input
	if first.Mode() != building.LaborAuto || first.LaborPercent == nil || *first.LaborPercent != 40 {
		t.Errorf("first row = %+v", first)
	}
	if first.MaterialRates.Cement != nil {
		t.Errorf("empty cement cell should stay unset")
	}

	second := rows[1]
	if second.Line != 5 {
		t.Errorf("line = %d, want 5", second.Line)
	}
	in := second.Input
	if in.Mode() != building.LaborManual || in.LaborManual == nil || *in.LaborManual != 250000 {
		t.Errorf("labor = %v %v", in.Mode(), in.LaborManual)
	}
	if in.FinishingQuality != "premium" {
		t.Errorf("finishing = %q", in.FinishingQuality)
	}
	if in.MaterialRates.Steel == nil || *in.MaterialRates.Steel != 70 {
		t.Errorf("steel override = %v", in.MaterialRates.Steel)
	}
}

func TestNonNumericOptionalCellFallsBack(t *testing.T) {
	data := workbook(t, [][]any{
		header(),
		{1000, 1500, "", "n/a", "", "standard", "abc", "", "cheap", "", ""},
	})
	res, err := ImportBuilding(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 || res.SkippedCount != 0 {
		t.Fatalf("count = %d, skipped = %+v", res.Count, res.Skipped)
	}
	want, _ := building.Calculate(building.Input{AreaSqFt: 1000, RatePerSqFt: 1500})
	if got := res.Results[0].Result.Costs.TotalCost; got != want.Costs.TotalCost {
		t.Errorf("total = %v, want default-based %v", got, want.Costs.TotalCost)
	}
}

func TestColumnsReturnsCopy(t *testing.T) {
	Columns()[0] = "changed"
	if Columns()[0] != "area" {
		t.Error("Columns should not expose shared state")
	}
}

func TestImportBuildingSkipsInvalidRows(t *testing.T) {
	data := workbook(t, [][]any{
		header(),
		{1000, 1500},
		{0, 1500},
		{1200, 1600, "maybe"},
	})
	res, err := ImportBuilding(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 || res.SkippedCount != 2 {
		t.Fatalf("count = %d, skipped = %+v", res.Count, res.Skipped)
	}
	if res.GrandTotal != res.Results[0].Result.Costs.TotalCost {
		t.Errorf("grand total = %v", res.GrandTotal)
	}
}

func TestReadBuildingRowsEmptySheet(t *testing.T) {
	data := workbook(t, [][]any{header()})
	if _, _, err := ReadBuildingRows(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for header-only sheet")
	}
	if _, _, err := ReadBuildingRows(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatal("expected error for invalid file")
	}
}

func TestHandlerBuilding(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "estimates.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	part.Write(workbook(t, [][]any{header(), {1000, 1500}}))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/calc/import/building", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Building(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	(&Handler{}).Building(rec, httptest.NewRequest(http.MethodPost, "/api/calc/import/building", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing file status = %d", rec.Code)
	}
}
