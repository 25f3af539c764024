package kwallis

import "sort"

// MidRanks assigns pooled fractional ranks over values using the average-rank
// convention: every member of a maximal run of equal values receives the mean
// of the integer ranks the run spans. The second return is the tie term
// T = sum(t^3 - t) over all runs of length t > 1; T is zero iff no ties exist.
//
// The sum of the returned ranks is always n(n+1)/2, ties or not.
func MidRanks(values []float64) (ranks []float64, tieSum float64) {
	n := len(values)
	ranks = make([]float64, n)
	if n == 0 {
		return ranks, 0
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	i := 0
	for i < n {
		j := i + 1
		for j < n && values[idx[j]] == values[idx[i]] {
			j++
		}

		// The run occupies sorted positions i..j-1, i.e. ranks i+1..j.
		avgRank := float64(i+1+j) / 2.0
		for k := i; k < j; k++ {
			ranks[idx[k]] = avgRank
		}

		if t := float64(j - i); t > 1 {
			tieSum += t*t*t - t
		}

		i = j
	}

	return ranks, tieSum
}
