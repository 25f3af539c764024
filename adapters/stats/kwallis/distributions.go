package kwallis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Upper-tail probabilities of the classical approximating distributions,
// evaluated with gonum's distuv implementations.

func chiSquareTail(x float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}
	dist := distuv.ChiSquared{K: float64(df)}
	return 1 - dist.CDF(x)
}

// fTail returns NaN when either degrees-of-freedom is non-positive: the
// distribution is undefined there and the caller reports the statistic as-is.
func fTail(x float64, df1, df2 int) float64 {
	if df1 <= 0 || df2 <= 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if x <= 0 {
		return 1.0
	}
	dist := distuv.F{D1: float64(df1), D2: float64(df2)}
	return 1 - dist.CDF(x)
}

func betaTail(x, alpha, beta float64) float64 {
	if x <= 0 {
		return 1.0
	}
	if x >= 1 {
		return 0.0
	}
	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	return 1 - dist.CDF(x)
}

// gammaTail takes the shape/scale convention; distuv parameterizes by rate.
func gammaTail(x, shape, scale float64) float64 {
	if x <= 0 {
		return 1.0
	}
	dist := distuv.Gamma{Alpha: shape, Beta: 1 / scale}
	return 1 - dist.CDF(x)
}
