package kwallis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gokruskal/domain/kruskal"
	"gokruskal/internal/errors"
	"gokruskal/internal/testkit"
)

func valuesOf(samples []kruskal.Sample) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return values
}

// The canonical 31-point, three-group regression fixture. Expected values
// were pinned from an authoritative re-run of the formulas with the named
// distributions.
func TestRun_CanonicalDataset(t *testing.T) {
	res, err := Run(testkit.CanonicalSamples())
	require.NoError(t, err)

	assert.Equal(t, 31, res.N)
	assert.Equal(t, 3, res.K)
	assert.Equal(t, []int{1, 2, 3}, res.Labels)

	require.Len(t, res.Groups, 3)
	g1, g2, g3 := res.Groups[0], res.Groups[1], res.Groups[2]

	assert.Equal(t, 1, g1.Label)
	assert.Equal(t, 13, g1.N)
	assert.Equal(t, 73.0, g1.Median)
	assert.Equal(t, 202.0, g1.RankSum)
	assert.InDelta(t, 15.538461538461538, g1.MeanRank, 1e-12)
	assert.Equal(t, 2, g2.Label)
	assert.Equal(t, 9, g2.N)
	assert.Equal(t, 77.0, g2.Median)
	assert.Equal(t, 205.5, g2.RankSum)
	assert.InDelta(t, 22.833333333333332, g2.MeanRank, 1e-12)
	assert.Equal(t, 3, g3.Label)
	assert.Equal(t, 9, g3.N)
	assert.Equal(t, 70.0, g3.Median)
	assert.Equal(t, 88.5, g3.RankSum)
	assert.InDelta(t, 9.833333333333334, g3.MeanRank, 1e-12)

	assert.Equal(t, 132.0, res.TieSum)
	assert.InDelta(t, 9.257289081885855, res.HBiased, 1e-9)
	assert.InDelta(t, 0.9911290322580645, res.CorrectionFactor, 1e-12)
	assert.InDelta(t, 9.340145208737558, res.H, 1e-9)

	assert.Equal(t, res.H, res.ChiSquare.Statistic)
	assert.Equal(t, 2, res.ChiSquare.DF)
	assert.InDelta(t, 0.009371589083994936, res.ChiSquare.PValue, 1e-9)

	assert.InDelta(t, 6.781372838608528, res.F.Statistic, 1e-9)
	assert.Equal(t, 29.0, res.F.DFD)
	assert.Equal(t, 2, res.F.DFNumerator)
	assert.Equal(t, 27, res.F.DFDenominator)
	assert.InDelta(t, 0.004108579214318626, res.F.PValue, 1e-9)

	assert.Equal(t, 2.0, res.Beta.Mean)
	assert.InDelta(t, 3.6248966087675765, res.Beta.Variance, 1e-12)
	assert.InDelta(t, 26.346774193548388, res.Beta.Eta, 1e-12)
	assert.InDelta(t, 0.3545081132180769, res.Beta.Statistic, 1e-9)
	assert.InDelta(t, 0.9438032942259462, res.Beta.Alpha, 1e-9)
	assert.InDelta(t, 11.489282843823112, res.Beta.Beta, 1e-9)
	assert.InDelta(t, 0.005782406290500863, res.Beta.PValue, 1e-9)

	assert.Equal(t, 2.0, res.Gamma.Mean)
	assert.Equal(t, res.Beta.Variance, res.Gamma.Variance)
	assert.Equal(t, res.H, res.Gamma.Statistic)
	assert.InDelta(t, 1.1034797490017114, res.Gamma.Alpha, 1e-9)
	assert.InDelta(t, 1.8124483043837882, res.Gamma.Beta, 1e-9)
	assert.InDelta(t, 0.007335498876613, res.Gamma.PValue, 1e-9)
}

func TestRun_NoTies(t *testing.T) {
	res, err := Run(testkit.NoTiesSamples())
	require.NoError(t, err)

	assert.Zero(t, res.TieSum)
	assert.Equal(t, 1.0, res.CorrectionFactor)
	assert.Equal(t, res.HBiased, res.H, "no ties: H equals Hbiased exactly")

	assert.InDelta(t, 1.0769230769230769, res.H, 1e-12)
	assert.InDelta(t, 0.5836454781435741, res.ChiSquare.PValue, 1e-9)
	assert.InDelta(t, 0.5968992248062015, res.F.Statistic, 1e-9)
	assert.InDelta(t, 0.5732974803538426, res.F.PValue, 1e-9)
	assert.InDelta(t, 0.6074802256531633, res.Beta.PValue, 1e-9)
	assert.InDelta(t, 0.6321004442606813, res.Gamma.PValue, 1e-9)
}

// Labels need not be consecutive; {1, 5, 12} is three distinct groups. With
// N=4 and k=3 the F p-value denominator df is zero, a known non-fatal hazard.
func TestRun_SparseLabelsAndDegenerateF(t *testing.T) {
	samples := []kruskal.Sample{
		{Value: 1, Group: 1},
		{Value: 2, Group: 1},
		{Value: 3, Group: 5},
		{Value: 4, Group: 12},
	}

	res, err := Run(samples)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 5, 12}, res.Labels)
	assert.InDelta(t, 2.7, res.H, 1e-12)
	assert.InDelta(t, 0.25924026064589134, res.ChiSquare.PValue, 1e-9)

	assert.InDelta(t, 13.5, res.F.Statistic, 1e-9)
	assert.Equal(t, 0, res.F.DFDenominator)
	assert.True(t, math.IsNaN(res.F.PValue), "F distribution undefined, p must be NaN")

	// B = H/eta reaches 1 here; the Beta tail beyond it is empty
	assert.Equal(t, 1.0, res.Beta.Statistic)
	assert.Equal(t, 0.0, res.Beta.PValue)
	assert.InDelta(t, 0.1908731630220344, res.Gamma.PValue, 1e-9)
}

func TestRun_AllValuesIdentical(t *testing.T) {
	res, err := Run(testkit.IdenticalSamples(9))
	require.NoError(t, err)

	// every rank is (N+1)/2, so every group mean rank equals the null mean
	for _, g := range res.Groups {
		assert.Equal(t, 5.0, g.MeanRank)
	}
	assert.Zero(t, res.HBiased)
	assert.True(t, res.H == 0, "H is zero regardless of the correction factor")
	assert.Equal(t, 1.0, res.ChiSquare.PValue)
}

func TestRun_GroupRankSumsTotal(t *testing.T) {
	samples := testkit.RandomSamples(7, 11, 8, 14, 5)

	res, err := Run(samples)
	require.NoError(t, err)

	total := 0.0
	for _, g := range res.Groups {
		total += g.RankSum
	}
	n := float64(res.N)
	assert.InDelta(t, n*(n+1)/2, total, 1e-9)
}

func TestRun_PermutationInvariance(t *testing.T) {
	original, err := Run(testkit.CanonicalSamples())
	require.NoError(t, err)

	shuffled, err := Run(testkit.Shuffled(99, testkit.CanonicalSamples()))
	require.NoError(t, err)

	assert.Equal(t, original, shuffled, "bundle must not depend on input row order")
}

func TestRun_Idempotent(t *testing.T) {
	first, err := Run(testkit.CanonicalSamples())
	require.NoError(t, err)
	second, err := Run(testkit.CanonicalSamples())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_DuplicatedLabelRunsCollapse(t *testing.T) {
	// label 2 appears in two separate stretches of the input; it is still one group
	samples := []kruskal.Sample{
		{Value: 1, Group: 2},
		{Value: 5, Group: 1},
		{Value: 3, Group: 2},
		{Value: 8, Group: 3},
		{Value: 4, Group: 2},
	}

	res, err := Run(samples)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, res.Labels)
	require.Len(t, res.Groups, 3)
	assert.Equal(t, 3, res.Groups[1].N)
	assert.Equal(t, 3.0, res.Groups[1].Median)
}

func TestRun_SingleObservation(t *testing.T) {
	_, err := Run([]kruskal.Sample{{Value: 1, Group: 1}})

	require.Error(t, err)
	assert.Equal(t, errors.CodeNumericDomain, errors.GetCode(err))
	assert.Contains(t, err.Error(), "correction factor")
}

func TestRun_TinyDatasetBetaDomainError(t *testing.T) {
	// k=3, N=3: the moment-matched variance collapses and the Beta shape
	// parameters leave the valid domain
	samples := []kruskal.Sample{
		{Value: 1, Group: 1},
		{Value: 2, Group: 2},
		{Value: 3, Group: 3},
	}

	_, err := Run(samples)

	require.Error(t, err)
	assert.Equal(t, errors.CodeNumericDomain, errors.GetCode(err))
	assert.Contains(t, err.Error(), "beta approximation")
}

func TestRun_ValidationFailsBeforeComputation(t *testing.T) {
	samples := []kruskal.Sample{
		{Value: 1, Group: 1},
		{Value: 2, Group: 2.5},
	}

	res, err := Run(samples)

	assert.Nil(t, res, "no partial result on fatal errors")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidGroupLabels, errors.GetCode(err))
}

func TestRun_TwoGroups(t *testing.T) {
	// k >= 3 is a statistical concern, not an engine precondition
	samples := testkit.Build(map[int][]float64{
		1: {1.5, 3.5, 6.5, 8.0, 9.1},
		2: {2.2, 4.4, 5.0, 7.7, 10.3},
	})

	res, err := Run(samples)
	require.NoError(t, err)

	assert.Equal(t, 2, res.K)
	assert.Equal(t, 1, res.ChiSquare.DF)
	assert.GreaterOrEqual(t, res.H, 0.0)
}
