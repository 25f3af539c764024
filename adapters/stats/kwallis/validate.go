package kwallis

import (
	"fmt"
	"math"

	"gokruskal/domain/kruskal"
	"gokruskal/internal/errors"
)

// FiniteValue reports whether v is a finite real number (no NaN, no Inf).
func FiniteValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidLabel reports whether g is a strictly positive whole number.
func ValidLabel(g float64) bool {
	return FiniteValue(g) && g == math.Trunc(g) && g > 0
}

// ValidateSamples checks the complete input before any computation begins.
// It returns a coded error for the first offending observation: INVALID_INPUT
// for non-finite values, INVALID_GROUP_LABELS for labels that are not
// strictly positive whole numbers. At least one observation is required.
func ValidateSamples(samples []kruskal.Sample) error {
	if len(samples) == 0 {
		return errors.InvalidInput("at least one observation is required")
	}
	for i, s := range samples {
		if !FiniteValue(s.Value) {
			return errors.InvalidInput(fmt.Sprintf("observation %d: value must be a finite real number, got %v", i, s.Value))
		}
		if !ValidLabel(s.Group) {
			return errors.InvalidGroupLabels(fmt.Sprintf("invalid group labels: observation %d has label %v", i, s.Group))
		}
	}
	return nil
}
