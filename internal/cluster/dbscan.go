// Package cluster реализует плотностную кластеризацию DBSCAN над векторами признаков.
package cluster

import "math"

// Label - метка кластера, присвоенная точке.
type Label int

// Noise помечает точку, не попавшую ни в один кластер.
const Noise Label = -1

// DBSCAN кластеризует точки по плотности: точка является ядром, если в радиусе
// eps (евклидово расстояние, включая саму точку) находится не менее minPoints
// соседей. Кластеры нумеруются с нуля в порядке обхода точек, поэтому при
// одинаковом входе результат детерминирован.
func DBSCAN(points [][]float64, eps float64, minPoints int) []Label {
	labels := make([]Label, len(points))
	for i := range labels {
		labels[i] = Noise
	}
	if len(points) == 0 {
		return labels
	}

	visited := make([]bool, len(points))
	next := Label(0)

	for i := range points {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := regionQuery(points, i, eps)
		if len(neighbors) < minPoints {
			continue
		}

		labels[i] = next
		expand(points, neighbors, labels, visited, next, eps, minPoints)
		next++
	}

	return labels
}

// expand присоединяет к кластеру все точки, достижимые по плотности из ядра.
func expand(points [][]float64, seeds []int, labels []Label, visited []bool, id Label, eps float64, minPoints int) {
	for k := 0; k < len(seeds); k++ {
		j := seeds[k]
		if labels[j] == Noise {
			labels[j] = id
		}
		if visited[j] {
			continue
		}
		visited[j] = true

		neighbors := regionQuery(points, j, eps)
		if len(neighbors) >= minPoints {
			seeds = append(seeds, neighbors...)
		}
	}
}

// regionQuery возвращает индексы всех точек на расстоянии не более eps от points[i].
func regionQuery(points [][]float64, i int, eps float64) []int {
	var neighbors []int
	for j := range points {
		if distance(points[i], points[j]) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

func distance(a, b []float64) float64 {
	var sum float64
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// Partition группирует индексы точек по меткам кластеров, отбрасывая шум.
func Partition(labels []Label) map[Label][]int {
	groups := make(map[Label][]int)
	for i, l := range labels {
		if l == Noise {
			continue
		}
		groups[l] = append(groups[l], i)
	}
	return groups
}
