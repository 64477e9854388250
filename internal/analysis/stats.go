package analysis

import (
	"sort"
	"time"

	"github.com/shenikar/geo_pattern_analysis/internal/cluster"
)

// mostCommonInt возвращает самое частое значение, при равенстве частот - наименьшее
func mostCommonInt(values []int) int {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := 0, 0
	first := true
	for v, c := range counts {
		if first || c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
			first = false
		}
	}
	return best
}

// mostCommonString возвращает самое частое значение, при равенстве частот -
// лексикографически наименьшее
func mostCommonString(values []string) string {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	best, bestCount := "", 0
	first := true
	for v, c := range counts {
		if first || c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
			first = false
		}
	}
	return best
}

// spanDays возвращает разброс отметок времени в целых сутках, дробная часть отбрасывается
func spanDays(times []time.Time) int {
	if len(times) == 0 {
		return 0
	}

	minT, maxT := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}
	return int(maxT.Sub(minT) / (24 * time.Hour))
}

// sortedLabels возвращает метки кластеров по возрастанию для детерминированного обхода
func sortedLabels(groups map[cluster.Label][]int) []cluster.Label {
	labels := make([]cluster.Label, 0, len(groups))
	for l := range groups {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
