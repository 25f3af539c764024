package kwallis

import (
	"sort"

	"gokruskal/domain/kruskal"

	"github.com/montanaflynn/stats"
)

// aggregate partitions samples by group label and builds one summary row per
// distinct label: sample size, median of the raw values, pooled rank sum, and
// mean rank. Rows are ordered by ascending label regardless of input order.
//
// ranks must be the pooled mid-ranks of the samples, index-aligned.
func aggregate(samples []kruskal.Sample, ranks []float64) ([]kruskal.GroupSummary, []int) {
	members := make(map[int][]int)
	for i, s := range samples {
		label := int(s.Group)
		members[label] = append(members[label], i)
	}

	labels := make([]int, 0, len(members))
	for label := range members {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	groups := make([]kruskal.GroupSummary, 0, len(labels))
	for _, label := range labels {
		idx := members[label]

		values := make([]float64, len(idx))
		rankSum := 0.0
		for j, i := range idx {
			values[j] = samples[i].Value
			rankSum += ranks[i]
		}

		median, _ := stats.Median(values)

		groups = append(groups, kruskal.GroupSummary{
			Label:    label,
			N:        len(idx),
			Median:   median,
			RankSum:  rankSum,
			MeanRank: rankSum / float64(len(idx)),
		})
	}

	return groups, labels
}
