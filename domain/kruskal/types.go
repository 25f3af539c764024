package kruskal

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Sample is one observation: a measured value tagged with its group label.
// Labels arrive as raw numbers from whatever source produced them; validation
// requires each label to be a strictly positive whole number. Labels need not
// be consecutive ({1, 5, 12} is a valid set of three groups).
type Sample struct {
	Value float64 `json:"value"`
	Group float64 `json:"group"`
}

// Options configures a single test invocation.
// Display controls whether a formatted report is emitted; it never affects
// the returned Result.
type Options struct {
	Display bool `json:"display"`
}

// DefaultOptions returns the documented defaults (Display enabled).
func DefaultOptions() Options {
	return Options{Display: true}
}

// GroupSummary is one row of the group table.
// INVARIANTS:
// - N > 0 (groups are derived from the data, empty groups cannot occur)
// - rows are ordered by ascending Label, never by input order
type GroupSummary struct {
	Label    int     `json:"label"`
	N        int     `json:"n"`
	Median   float64 `json:"median"`
	RankSum  float64 `json:"rank_sum"`
	MeanRank float64 `json:"mean_rank"`
}

// ChiSquareApprox is the chi-square significance approximation.
type ChiSquareApprox struct {
	Statistic float64 `json:"statistic"` // equals H
	DF        int     `json:"df"`        // k - 1
	PValue    float64 `json:"p_value"`
}

// FApprox is the F significance approximation.
//
// DFD (N - df) and DFDenominator (N - k - 1) are generally different numbers;
// the classical formulation carries both and they are preserved as distinct
// fields.
// The statistic denominator (N - 1 - H) can be zero or negative for extreme H,
// and DFDenominator can be non-positive for tiny N. Neither is fatal: the
// statistic is returned as-is and the p-value is NaN when the distribution is
// undefined. Consumers must sanity-check the sign before interpreting PValue.
type FApprox struct {
	Statistic     float64 `json:"statistic"`
	DFD           float64 `json:"dfd"`            // N - df
	DFNumerator   int     `json:"df_numerator"`   // k - 1
	DFDenominator int     `json:"df_denominator"` // N - k - 1
	PValue        float64 `json:"p_value"`
}

// BetaApprox is the moment-matched Beta significance approximation.
type BetaApprox struct {
	Mean      float64 `json:"mean"`      // m = k - 1
	Variance  float64 `json:"variance"`  // s2
	Eta       float64 `json:"eta"`       // (N^3 - sum n_g^3) / (N (N+1))
	Statistic float64 `json:"statistic"` // B = H / eta
	Alpha     float64 `json:"alpha"`
	Beta      float64 `json:"beta"`
	PValue    float64 `json:"p_value"`
}

// GammaApprox is the moment-matched Gamma significance approximation.
// Beta here is the scale parameter (shape Alpha, scale Beta).
type GammaApprox struct {
	Mean      float64 `json:"mean"`      // m = k - 1
	Variance  float64 `json:"variance"`  // s2, same formula as BetaApprox
	Statistic float64 `json:"statistic"` // G = H
	Alpha     float64 `json:"alpha"`
	Beta      float64 `json:"beta"`
	PValue    float64 `json:"p_value"`
}

// Result is the immutable output bundle of one test invocation.
// Created once per invocation; never mutated; never persisted.
type Result struct {
	N                int             `json:"n"`
	K                int             `json:"k"`
	Labels           []int           `json:"labels"` // sorted ascending
	Groups           []GroupSummary  `json:"groups"` // one row per label, same order
	TieSum           float64         `json:"tie_sum"` // T = sum(t^3 - t) over tie runs
	HBiased          float64         `json:"h_biased"`
	CorrectionFactor float64         `json:"correction_factor"`
	H                float64         `json:"h"`
	ChiSquare        ChiSquareApprox `json:"chi_square"`
	F                FApprox         `json:"f"`
	Beta             BetaApprox      `json:"beta"`
	Gamma            GammaApprox     `json:"gamma"`
}
