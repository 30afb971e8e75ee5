package batch

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/validate"
)

func TestCalculateBuilding(t *testing.T) {
	in := BuildingBatchInput{Items: []building.Input{
		{AreaSqFt: 1000, RatePerSqFt: 1500},
		{AreaSqFt: 2000, RatePerSqFt: 1500},
	}}
	res, err := CalculateBuilding(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 || len(res.Results) != 2 {
		t.Fatalf("count = %d, results = %d", res.Count, len(res.Results))
	}
	want := res.Results[0].Costs.TotalCost + res.Results[1].Costs.TotalCost
	if math.Abs(res.GrandTotal-want) > 1e-6 {
		t.Errorf("grand total = %v, want %v", res.GrandTotal, want)
	}
}

func TestCalculateBuildingRejects(t *testing.T) {
	tests := []struct {
		name  string
		in    BuildingBatchInput
		index int
		field string
	}{
		{"empty", BuildingBatchInput{}, -1, "items"},
		{
			name: "second item invalid",
			in: BuildingBatchInput{Items: []building.Input{
				{AreaSqFt: 1000, RatePerSqFt: 1500},
				{AreaSqFt: 1000},
				{AreaSqFt: -1, RatePerSqFt: 1},
			}},
			index: 1,
			field: "rate",
		},
		{"too many", BuildingBatchInput{Items: make([]building.Input, MaxItems+1)}, -1, "items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateBuilding(tt.in)
			if !errors.Is(err, validate.ErrInvalidInput) {
				t.Fatalf("err = %v, want invalid input", err)
			}
			var itemErr *ItemError
			if tt.index >= 0 && (!errors.As(err, &itemErr) || itemErr.Index != tt.index) {
				t.Errorf("err = %v, want index %d", err, tt.index)
			}
			var verr *validate.Error
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("err = %v, want field %s", err, tt.field)
			}
		})
	}
}

func TestHandlerBuilding(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		index  *int
	}{
		{"ok", `{"items":[{"area":1000,"rate":1500}]}`, http.StatusOK, nil},
		{"bad item", `{"items":[{"area":1000,"rate":1500},{"area":0,"rate":1}]}`, http.StatusBadRequest, new(int)},
		{"bad payload", `{"items":`, http.StatusBadRequest, nil},
	}
	*tests[1].index = 1
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			(&Handler{}).Building(rec, httptest.NewRequest(http.MethodPost, "/api/calc/batch/building", strings.NewReader(tt.body)))
			if rec.Code != tt.status {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
			}
			if tt.index == nil {
				return
			}
			var got itemErrorBody
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Index != *tt.index || got.Field != "area" {
				t.Errorf("body = %+v", got)
			}
		})
	}
}
