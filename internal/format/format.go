// Package format turns calculator figures into display strings using the
// Indian numbering system (en-IN): the rightmost three digits form the first
// group and every two digits after that form the next, e.g. ₹1,23,45,678.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	placeholder         = "--"
	currencyPlaceholder = "₹ --"
)

// Currency formats an amount in whole rupees, rounding half away from zero.
func Currency(amount float64) string {
	if !finite(amount) {
		return currencyPlaceholder
	}
	s := Number(amount, 0)
	if strings.HasPrefix(s, "-") {
		return "-₹" + s[1:]
	}
	return "₹" + s
}

// Number formats v with exactly decimals fraction digits.
func Number(v float64, decimals int) string {
	if !finite(v) {
		return placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	raw := decimal.NewFromFloat(v).StringFixed(int32(decimals))

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	intPart, fracPart, _ := strings.Cut(raw, ".")
	out := applyIndianGrouping(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	if negative && strings.Trim(out, "0.,") != "" {
		out = "-" + out
	}
	return out
}

// Quantity formats v followed by its unit, e.g. "400 bags".
func Quantity(v float64, decimals int, unit string) string {
	s := Number(v, decimals)
	if s == placeholder || unit == "" {
		return s
	}
	return s + " " + unit
}

// Percent formats a 0..1 share as "75.0%".
func Percent(share float64, decimals int) string {
	if !finite(share) {
		return placeholder
	}
	return decimal.NewFromFloat(share*100).StringFixed(int32(decimals)) + "%"
}

func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
