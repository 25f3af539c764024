// Package testkit provides shared fixtures for the test suite.
package testkit

import (
	"math/rand"
	"sort"

	"gokruskal/domain/kruskal"
)

// CanonicalSamples returns the 31-point, three-group regression fixture
// (group sizes 13, 9, 9, with ties within and across groups). The expected
// statistics for this dataset are pinned in the engine tests.
func CanonicalSamples() []kruskal.Sample {
	groups := map[int][]float64{
		1: {68, 72, 75, 78, 69, 70, 74, 77, 71, 73, 75, 80, 66},
		2: {75, 81, 73, 86, 79, 70, 83, 77, 74},
		3: {64, 70, 72, 66, 77, 69, 73, 71, 68},
	}
	return Build(groups)
}

// NoTiesSamples returns a 12-point, three-group fixture with all distinct
// values, so the tie correction is exactly 1.
func NoTiesSamples() []kruskal.Sample {
	groups := map[int][]float64{
		1: {3.1, 7.4, 1.2, 9.8},
		2: {5.5, 11.0, 8.2, 6.3},
		3: {2.4, 4.6, 10.1, 12.7},
	}
	return Build(groups)
}

// IdenticalSamples returns n copies of the same value spread over three
// groups: a single tied block spanning the whole dataset.
func IdenticalSamples(n int) []kruskal.Sample {
	samples := make([]kruskal.Sample, n)
	for i := range samples {
		samples[i] = kruskal.Sample{Value: 5.0, Group: float64(i%3 + 1)}
	}
	return samples
}

// Build flattens a label -> values map into a sample slice, in ascending
// label order.
func Build(groups map[int][]float64) []kruskal.Sample {
	labels := make([]int, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	var samples []kruskal.Sample
	for _, label := range labels {
		for _, v := range groups[label] {
			samples = append(samples, kruskal.Sample{Value: v, Group: float64(label)})
		}
	}
	return samples
}

// RandomSamples generates a deterministic dataset: len(sizes) groups with the
// given sizes, labeled 1..len(sizes), values drawn from a seeded generator.
func RandomSamples(seed int64, sizes ...int) []kruskal.Sample {
	rng := rand.New(rand.NewSource(seed))
	var samples []kruskal.Sample
	for g, size := range sizes {
		for i := 0; i < size; i++ {
			samples = append(samples, kruskal.Sample{
				Value: rng.NormFloat64()*10 + float64(g),
				Group: float64(g + 1),
			})
		}
	}
	return samples
}

// Shuffled returns a copy of samples in a deterministic shuffled order.
func Shuffled(seed int64, samples []kruskal.Sample) []kruskal.Sample {
	out := make([]kruskal.Sample, len(samples))
	copy(out, samples)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
