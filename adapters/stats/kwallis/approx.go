package kwallis

import (
	"fmt"

	"gokruskal/domain/kruskal"
	"gokruskal/internal/errors"
)

// The four significance approximations are pure functions of
// (H, k, N, group sizes). Degrees of freedom is k-1 throughout.

func chiSquareApprox(h float64, k int) kruskal.ChiSquareApprox {
	df := k - 1
	return kruskal.ChiSquareApprox{
		Statistic: h,
		DF:        df,
		PValue:    chiSquareTail(h, df),
	}
}

// fApprox keeps dfd = N - df and the p-value denominator df N - k - 1 as
// distinct quantities; the classical formulation carries both. The statistic
// denominator (N - 1 - H) is deliberately unguarded: a zero or negative
// denominator yields an undefined or negative F, returned as-is.
func fApprox(h float64, k, n int) kruskal.FApprox {
	df := k - 1
	nf := float64(n)
	dfd := nf - float64(df)
	f := ((dfd + 1) * h) / (float64(df) * (nf - 1 - h))
	dfDenominator := n - k - 1
	return kruskal.FApprox{
		Statistic:     f,
		DFD:           dfd,
		DFNumerator:   df,
		DFDenominator: dfDenominator,
		PValue:        fTail(f, df, dfDenominator),
	}
}

// varianceH is the moment-matched variance of H shared by the Beta and Gamma
// approximations.
func varianceH(k, n int, groups []kruskal.GroupSummary) float64 {
	kf := float64(k)
	nf := float64(n)
	df := kf - 1

	invSizeSum := 0.0
	for _, g := range groups {
		invSizeSum += 1 / float64(g.N)
	}

	return 2*df - 2*(3*kf*kf-6*kf+nf*(2*kf*kf-6*kf+1))/(5*nf*(nf+1)) - (6.0/5.0)*invSizeSum
}

func betaApprox(h float64, k, n int, groups []kruskal.GroupSummary) (kruskal.BetaApprox, error) {
	m := float64(k - 1)
	nf := float64(n)

	s2 := varianceH(k, n, groups)
	if s2 <= 0 {
		return kruskal.BetaApprox{}, errors.NumericDomain("beta approximation",
			fmt.Sprintf("variance must be positive, got %g", s2))
	}

	cubeSum := 0.0
	for _, g := range groups {
		ng := float64(g.N)
		cubeSum += ng * ng * ng
	}
	eta := (nf*nf*nf - cubeSum) / (nf * (nf + 1))
	b := h / eta

	alpha := m * (m*(eta-m) - s2) / (eta * s2)
	betaParam := alpha * (eta - m) / m
	if alpha <= 0 || betaParam <= 0 {
		return kruskal.BetaApprox{}, errors.NumericDomain("beta approximation",
			fmt.Sprintf("shape parameters must be positive (alpha=%g, beta=%g)", alpha, betaParam))
	}

	return kruskal.BetaApprox{
		Mean:      m,
		Variance:  s2,
		Eta:       eta,
		Statistic: b,
		Alpha:     alpha,
		Beta:      betaParam,
		PValue:    betaTail(b, alpha, betaParam),
	}, nil
}

func gammaApprox(h float64, k, n int, groups []kruskal.GroupSummary) (kruskal.GammaApprox, error) {
	m := float64(k - 1)

	s2 := varianceH(k, n, groups)
	if s2 <= 0 || m <= 0 {
		return kruskal.GammaApprox{}, errors.NumericDomain("gamma approximation",
			fmt.Sprintf("shape parameters must be positive (mean=%g, variance=%g)", m, s2))
	}

	alpha := m * m / s2
	scale := s2 / m

	return kruskal.GammaApprox{
		Mean:      m,
		Variance:  s2,
		Statistic: h,
		Alpha:     alpha,
		Beta:      scale,
		PValue:    gammaTail(h, alpha, scale),
	}, nil
}
