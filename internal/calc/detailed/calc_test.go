package detailed

import (
	"errors"
	"math"
	"testing"

	"Portfolio/internal/calc/params"
	"Portfolio/internal/calc/validate"
)

func TestEstimateRCCResidential(t *testing.T) {
	res, err := Calculate(Input{
		ProjectType:      "residential",
		ConstructionType: "rcc",
		LengthFt:         40,
		WidthFt:          30,
		Floors:           2,
		FloorHeightFt:    10,
		FinishQuality:    params.FinishingStandard,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.PlinthAreaSqFt != 1200 || res.TotalAreaSqFt != 2400 || res.WallAreaSqFt != 2800 {
		t.Errorf("areas = %v / %v / %v", res.PlinthAreaSqFt, res.TotalAreaSqFt, res.WallAreaSqFt)
	}
	if res.ConstructionCost != 2400*1600 {
		t.Errorf("construction cost = %v", res.ConstructionCost)
	}
	// 24 × (0.45, 1.3, 2.6, 4.5) rounded up
	want := Materials{Cement: 11, Sand: 32, Aggregate: 63, Steel: 108, Bricks: 0}
	if res.Materials != want {
		t.Errorf("materials = %+v, want %+v", res.Materials, want)
	}

	var sum, shares float64
	for _, it := range res.Breakdown {
		sum += it.Amount
		shares += it.Share
	}
	if math.Abs(sum-res.GrandTotal) > 1e-6 {
		t.Errorf("grand total %v != sum %v", res.GrandTotal, sum)
	}
	if math.Abs(shares-1) > 1e-9 {
		t.Errorf("shares sum to %v", shares)
	}
	if res.Verified {
		t.Error("rate-card coefficients must not be reported as verified")
	}
}

func TestEstimateLoadBearingHasBricks(t *testing.T) {
	res, err := Calculate(Input{ProjectType: "commercial", ConstructionType: "loadbearing", LengthFt: 25, WidthFt: 20, Floors: 1, FloorHeightFt: 10, FinishQuality: "luxury"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Materials.Bricks != 275 {
		t.Errorf("bricks = %v, want 275", res.Materials.Bricks)
	}
	if res.ConstructionRate != 3500 {
		t.Errorf("rate = %v, want commercial luxury 3500", res.ConstructionRate)
	}
}

func TestEstimateFallbacks(t *testing.T) {
	res, err := Calculate(Input{ProjectType: "bridge", ConstructionType: "timber", LengthFt: 10, WidthFt: 10, Floors: 1, FloorHeightFt: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.ConstructionRate != 1600 {
		t.Errorf("unknown project/quality should use residential standard, got %v", res.ConstructionRate)
	}
	if res.Materials.Steel != math.Ceil(4.5) {
		t.Errorf("unknown construction type should use rcc profile, got %+v", res.Materials)
	}
}

func TestEstimateRejects(t *testing.T) {
	_, err := Calculate(Input{LengthFt: 10, WidthFt: 10, Floors: 0, FloorHeightFt: 10})
	var verr *validate.Error
	if !errors.As(err, &verr) || verr.Field != "floors" {
		t.Errorf("expected floors error, got %v", err)
	}
}

func TestLines(t *testing.T) {
	res, _ := Calculate(Input{ProjectType: "residential", ConstructionType: "mixed", LengthFt: 20, WidthFt: 20, Floors: 1, FloorHeightFt: 10})
	lines := Lines(res)
	if lines[len(lines)-1].Label != "Grand total" {
		t.Errorf("last line = %+v", lines[len(lines)-1])
	}
	found := false
	for _, l := range lines {
		if l.Label == "Bricks" {
			found = true
		}
	}
	if !found {
		t.Error("mixed construction should list bricks")
	}
}
