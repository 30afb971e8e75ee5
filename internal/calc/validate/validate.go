// Package validate rejects calculator input before it reaches a pipeline.
// Every failure is an *Error naming the field and the broken constraint.
package validate

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput matches every *Error through errors.Is.
var ErrInvalidInput = errors.New("invalid input")

type Error struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidInput
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Positive requires a finite number greater than zero.
func Positive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return &Error{Field: field, Constraint: "must be greater than 0"}
	}
	return nil
}

// PositiveInt requires a whole number above zero.
func PositiveInt(field string, v int) error {
	if v <= 0 {
		return &Error{Field: field, Constraint: "must be a whole number greater than 0"}
	}
	return nil
}

// OneOf requires v to be one of the allowed names.
func OneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return &Error{Field: field, Constraint: fmt.Sprintf("must be one of %v", allowed)}
}

// First returns the first non-nil error, so a form reports one field at a time.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
