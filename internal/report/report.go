// Package report renders a Result bundle as a human-readable console report.
// The computation pipeline never depends on this package; callers that want
// the report invoke Render with the writer of their choice.
package report

import (
	"fmt"
	"io"
	"math"

	"gokruskal/domain/kruskal"
)

// Render writes the group table, the correction factor and H, and one table
// per significance approximation.
func Render(w io.Writer, r *kruskal.Result) {
	fmt.Fprintf(w, "Kruskal-Wallis H test (N=%d, k=%d)\n\n", r.N, r.K)

	fmt.Fprintf(w, "%-8s %-6s %-12s %-12s %-12s\n", "Group", "N", "Median", "RankSum", "MeanRank")
	for _, g := range r.Groups {
		fmt.Fprintf(w, "%-8d %-6d %-12.4f %-12.2f %-12.4f\n", g.Label, g.N, g.Median, g.RankSum, g.MeanRank)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Tie term T          = %.0f\n", r.TieSum)
	fmt.Fprintf(w, "Correction factor   = %.6f\n", r.CorrectionFactor)
	fmt.Fprintf(w, "H (uncorrected)     = %.6f\n", r.HBiased)
	fmt.Fprintf(w, "H (tie-corrected)   = %.6f\n\n", r.H)

	fmt.Fprintf(w, "Chi-square approximation\n")
	fmt.Fprintf(w, "  statistic = %.6f  df = %d  p = %s\n\n",
		r.ChiSquare.Statistic, r.ChiSquare.DF, formatP(r.ChiSquare.PValue))

	fmt.Fprintf(w, "F approximation\n")
	fmt.Fprintf(w, "  statistic = %.6f  dfd = %.0f  df = (%d, %d)  p = %s\n",
		r.F.Statistic, r.F.DFD, r.F.DFNumerator, r.F.DFDenominator, formatP(r.F.PValue))
	if r.F.Statistic <= 0 || math.IsNaN(r.F.PValue) {
		fmt.Fprintf(w, "  warning: statistic outside the distribution's domain; p-value is not interpretable\n")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Beta approximation\n")
	fmt.Fprintf(w, "  mean = %.6f  variance = %.6f  eta = %.6f\n", r.Beta.Mean, r.Beta.Variance, r.Beta.Eta)
	fmt.Fprintf(w, "  statistic = %.6f  alpha = %.6f  beta = %.6f  p = %s\n\n",
		r.Beta.Statistic, r.Beta.Alpha, r.Beta.Beta, formatP(r.Beta.PValue))

	fmt.Fprintf(w, "Gamma approximation\n")
	fmt.Fprintf(w, "  mean = %.6f  variance = %.6f\n", r.Gamma.Mean, r.Gamma.Variance)
	fmt.Fprintf(w, "  statistic = %.6f  alpha = %.6f  beta = %.6f  p = %s\n",
		r.Gamma.Statistic, r.Gamma.Alpha, r.Gamma.Beta, formatP(r.Gamma.PValue))
}

func formatP(p float64) string {
	if math.IsNaN(p) {
		return "undefined"
	}
	if p < 0.0001 && p > 0 {
		return fmt.Sprintf("%.4e", p)
	}
	return fmt.Sprintf("%.6f", p)
}
