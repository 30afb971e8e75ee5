package materials

import (
	"errors"
	"testing"

	"Portfolio/internal/calc/validate"
)

func itemValue(t *testing.T, res Result, name string) float64 {
	t.Helper()
	for _, it := range res.Items {
		if it.Name == name {
			return it.Value
		}
	}
	t.Fatalf("item %q missing from %+v", name, res.Items)
	return 0
}

func TestCalculate(t *testing.T) {
	four := 4.0
	tests := []struct {
		name string
		in   Input
		want map[string]float64
	}{
		{
			// 100 sq.ft, mortar = 100 × 0.75 × 0.3 = 22.5 cft
			name: "9 inch brickwork",
			in:   Input{WorkType: Brickwork9, LengthFt: 10, WidthFt: 10},
			want: map[string]float64{"Bricks": 1350, "Cement": 34, "Sand": 788},
		},
		{
			name: "4.5 inch brickwork",
			in:   Input{WorkType: Brickwork4, LengthFt: 10, WidthFt: 10},
			want: map[string]float64{"Bricks": 700},
		},
		{
			name: "flooring default thickness",
			in:   Input{WorkType: Flooring, LengthFt: 12, WidthFt: 10},
			want: map[string]float64{"Cement": 80, "Sand": 1600, "Tiles/Marble": 132},
		},
		{
			name: "rcc",
			in:   Input{WorkType: RCC, LengthFt: 10, WidthFt: 10, ThicknessIn: &four},
			want: map[string]float64{"Steel": 400},
		},
		{
			name: "plaster coverage",
			in:   Input{WorkType: Plaster, LengthFt: 15, WidthFt: 10},
			want: map[string]float64{"Coverage": 150},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			for name, want := range tt.want {
				if got := itemValue(t, res, name); got != want {
					t.Errorf("%s = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestCalculateRoundsUp(t *testing.T) {
	res, err := Calculate(Input{WorkType: RCC, LengthFt: 3, WidthFt: 3})
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range res.Items {
		if it.Value != float64(int64(it.Value)) {
			t.Errorf("%s = %v is not a whole ordering unit", it.Name, it.Value)
		}
	}
}

func TestCalculateRejects(t *testing.T) {
	_, err := Calculate(Input{WorkType: "painting", LengthFt: 1, WidthFt: 1})
	var verr *validate.Error
	if !errors.As(err, &verr) || verr.Field != "work_type" {
		t.Errorf("expected work_type error, got %v", err)
	}
	if _, err := Calculate(Input{WorkType: RCC, WidthFt: 1}); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("expected invalid length, got %v", err)
	}
}
