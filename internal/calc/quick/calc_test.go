package quick

import (
	"errors"
	"testing"

	"Portfolio/internal/calc/validate"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{AreaSqFt: 1200, RatePerSqFt: 1600})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalCost != 1920000 {
		t.Errorf("total = %v, want 1920000", res.TotalCost)
	}
	if res.Materials.Cement != 1200*0.4 || res.Materials.Steel != 1200*4.0 {
		t.Errorf("materials = %+v", res.Materials)
	}
}

func TestCalculateRejects(t *testing.T) {
	for _, in := range []Input{{AreaSqFt: 0, RatePerSqFt: 1}, {AreaSqFt: 1, RatePerSqFt: -1}} {
		if _, err := Calculate(in); !errors.Is(err, validate.ErrInvalidInput) {
			t.Errorf("Calculate(%+v) err = %v, want invalid input", in, err)
		}
	}
}
