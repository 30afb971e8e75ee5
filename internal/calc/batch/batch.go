package batch

import (
	"fmt"

	"Portfolio/internal/calc/building"
	"Portfolio/internal/calc/validate"
)

const MaxItems = 200

type BuildingBatchInput struct {
	Items []building.Input `json:"items"`
}

type BuildingBatchResult struct {
	Count      int               `json:"count"`
	Results    []building.Result `json:"results"`
	GrandTotal float64           `json:"grand_total"`
}

// ItemError reports which item of a batch was rejected.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }

func (e *ItemError) Unwrap() error { return e.Err }

// CalculateBuilding estimates every item in order. The first invalid item
// aborts the batch.
func CalculateBuilding(in BuildingBatchInput) (BuildingBatchResult, error) {
	if len(in.Items) == 0 {
		return BuildingBatchResult{}, &validate.Error{Field: "items", Constraint: "must not be empty"}
	}
	if len(in.Items) > MaxItems {
		return BuildingBatchResult{}, &validate.Error{Field: "items", Constraint: fmt.Sprintf("must contain at most %d entries", MaxItems)}
	}
	out := BuildingBatchResult{Results: make([]building.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := building.Calculate(item)
		if err != nil {
			return BuildingBatchResult{}, &ItemError{Index: i, Err: err}
		}
		out.Results = append(out.Results, res)
		out.GrandTotal += res.Costs.TotalCost
	}
	out.Count = len(out.Results)
	return out, nil
}
