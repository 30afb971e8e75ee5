package building

import (
	"encoding/json"
	"strconv"
	"strings"
)

// UnmarshalJSON reads numbers the way form fields send them: a JSON number
// or a numeric string. A required field that is not a number decodes as 0
// and fails validation; an optional one stays nil and falls back to its
// default. labor_auto, when present, takes precedence over labor_mode.
func (in *Input) UnmarshalJSON(data []byte) error {
	type plain Input
	var aux struct {
		plain
		AreaSqFt           json.RawMessage `json:"area"`
		RatePerSqFt        json.RawMessage `json:"rate"`
		LaborAuto          json.RawMessage `json:"labor_auto"`
		LaborPercent       json.RawMessage `json:"labor_percent"`
		LaborManual        json.RawMessage `json:"labor_manual"`
		ContingencyPercent json.RawMessage `json:"contingency_percent"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*in = Input(aux.plain)
	in.AreaSqFt, _ = number(aux.AreaSqFt)
	in.RatePerSqFt, _ = number(aux.RatePerSqFt)
	in.LaborAuto = flag(aux.LaborAuto)
	in.LaborPercent = optional(aux.LaborPercent)
	in.LaborManual = optional(aux.LaborManual)
	in.ContingencyPercent = optional(aux.ContingencyPercent)
	return nil
}

func (o *RateOverrides) UnmarshalJSON(data []byte) error {
	var aux struct {
		Cement    json.RawMessage `json:"cement"`
		Steel     json.RawMessage `json:"steel"`
		Sand      json.RawMessage `json:"sand"`
		Aggregate json.RawMessage `json:"aggregate"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*o = RateOverrides{
		Cement:    optional(aux.Cement),
		Steel:     optional(aux.Steel),
		Sand:      optional(aux.Sand),
		Aggregate: optional(aux.Aggregate),
	}
	return nil
}

// number reports false for an absent, null, empty or non-numeric value.
func number(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func optional(raw json.RawMessage) *float64 {
	v, ok := number(raw)
	if !ok {
		return nil
	}
	return &v
}

// flag accepts a JSON bool or a string strconv.ParseBool understands.
func flag(raw json.RawMessage) *bool {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch x := v.(type) {
	case bool:
		return &x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		return &b
	}
	return nil
}
