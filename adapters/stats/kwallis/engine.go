// Package kwallis computes the Kruskal-Wallis H statistic for three or more
// independent groups and four distributional approximations of its
// significance (chi-square, F, Beta, Gamma).
//
// The pipeline is a pure function of its input: pooled mid-ranking with tie
// handling, per-group aggregation, the tie-corrected H statistic, then the
// approximations. No state survives an invocation.
package kwallis

import (
	"gokruskal/domain/kruskal"
	"gokruskal/internal/errors"
)

// Run executes the full pipeline and returns the result bundle.
//
// Fatal conditions: malformed input (INVALID_INPUT, INVALID_GROUP_LABELS)
// and mathematically undefined quantities (NUMERIC_DOMAIN: N <= 1, or
// non-positive Beta/Gamma shape parameters). No partial result is produced
// on error. The F approximation's known hazards are non-fatal; see
// kruskal.FApprox.
func Run(samples []kruskal.Sample) (*kruskal.Result, error) {
	if err := ValidateSamples(samples); err != nil {
		return nil, err
	}

	n := len(samples)
	values := make([]float64, n)
	for i, s := range samples {
		values[i] = s.Value
	}

	ranks, tieSum := MidRanks(values)
	groups, labels := aggregate(samples, ranks)
	k := len(groups)

	hBiased, cf, h, err := hStatistic(groups, n, tieSum)
	if err != nil {
		return nil, err
	}

	result := &kruskal.Result{
		N:                n,
		K:                k,
		Labels:           labels,
		Groups:           groups,
		TieSum:           tieSum,
		HBiased:          hBiased,
		CorrectionFactor: cf,
		H:                h,
	}

	// All four approximations are derived independently; a degenerate F does
	// not stop the others.
	result.ChiSquare = chiSquareApprox(h, k)
	result.F = fApprox(h, k, n)

	beta, err := betaApprox(h, k, n, groups)
	if err != nil {
		return nil, err
	}
	result.Beta = beta

	gamma, err := gammaApprox(h, k, n, groups)
	if err != nil {
		return nil, err
	}
	result.Gamma = gamma

	return result, nil
}

// hStatistic computes the uncorrected statistic, the tie correction factor,
// and the corrected H from the group aggregates.
//
// CF = 1 when no ties exist, else 1 - 2T/(N(N^2-1)); H = Hbiased / CF. With
// no ties H equals Hbiased exactly. N <= 1 leaves the correction denominator
// degenerate and is rejected rather than silently producing NaN.
func hStatistic(groups []kruskal.GroupSummary, n int, tieSum float64) (hBiased, cf, h float64, err error) {
	if n <= 1 {
		return 0, 0, 0, errors.NumericDomain("correction factor",
			"at least two observations are required")
	}

	nf := float64(n)
	rbar := (nf + 1) / 2 // expected mean rank under the null

	d := 0.0
	for _, g := range groups {
		diff := g.MeanRank - rbar
		d += float64(g.N) * diff * diff
	}

	hBiased = 12 * d / (nf * (nf + 1))
	cf = 1.0
	if tieSum != 0 {
		cf = 1 - 2*tieSum/(nf*(nf*nf-1))
	}
	h = hBiased / cf

	return hBiased, cf, h, nil
}
