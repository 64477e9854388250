package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBSCAN_TwoClustersAndNoise(t *testing.T) {
	// Подготовка: две плотные группы по 5 точек и одна изолированная точка
	points := [][]float64{
		{0, 0}, {0.005, 0}, {0, 0.005}, {0.005, 0.005}, {0.002, 0.002},
		{1, 1}, {1.005, 1}, {1, 1.005}, {1.005, 1.005}, {1.002, 1.002},
		{5, 5},
	}

	labels := DBSCAN(points, 0.01, 5)

	require.Len(t, labels, len(points))
	for i := 0; i < 5; i++ {
		assert.Equal(t, Label(0), labels[i], "point %d", i)
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, Label(1), labels[i], "point %d", i)
	}
	assert.Equal(t, Noise, labels[10])
}

func TestDBSCAN_BorderPointJoinsCluster(t *testing.T) {
	// Точка p4 не является ядром, но достижима из ядра p1
	points := [][]float64{
		{0, 0}, {0.005, 0}, {-0.005, 0}, {0, 0.005},
		{0.014, 0},
		{1, 1},
	}

	labels := DBSCAN(points, 0.01, 4)

	assert.Equal(t, []Label{0, 0, 0, 0, 0, Noise}, labels)
}

func TestDBSCAN_AllNoiseWhenSparse(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}}

	labels := DBSCAN(points, 0.01, 2)

	assert.Equal(t, []Label{Noise, Noise, Noise}, labels)
}

func TestDBSCAN_MinPointsOne(t *testing.T) {
	// При minPoints=1 каждая точка сама себе ядро
	points := [][]float64{{0, 0}, {10, 10}}

	labels := DBSCAN(points, 0.01, 1)

	assert.Equal(t, []Label{0, 1}, labels)
}

func TestDBSCAN_EpsBoundaryInclusive(t *testing.T) {
	// Расстояние ровно eps считается соседством
	points := [][]float64{{0, 0}, {0.01, 0}}

	labels := DBSCAN(points, 0.01, 2)

	assert.Equal(t, []Label{0, 0}, labels)
}

func TestDBSCAN_FourDimensionalPoints(t *testing.T) {
	// Четырехмерные точки в масштабе взвешенных пространственно-временных признаков
	points := [][]float64{
		{39.025, 26.327, 0.0129, 0.2500},
		{39.026, 26.328, 0.0171, 0.2500},
		{39.025, 26.328, 0.0214, 0.2500},
		{7.000, 7.000, 0.0043, 0.0375},
	}

	labels := DBSCAN(points, 0.05, 3)

	assert.Equal(t, []Label{0, 0, 0, Noise}, labels)
}

func TestDBSCAN_EmptyInput(t *testing.T) {
	labels := DBSCAN(nil, 0.01, 5)

	assert.Empty(t, labels)
}

func TestDBSCAN_Deterministic(t *testing.T) {
	points := [][]float64{
		{0, 0}, {0.004, 0}, {0.008, 0}, {0.3, 0.3}, {0.304, 0.3}, {0.308, 0.3},
	}

	first := DBSCAN(points, 0.01, 3)
	second := DBSCAN(points, 0.01, 3)

	assert.Equal(t, first, second)
	assert.Equal(t, []Label{0, 0, 0, 1, 1, 1}, first)
}

func TestPartition(t *testing.T) {
	labels := []Label{0, 0, Noise, 1, 0, 1}

	groups := Partition(labels)

	require.Len(t, groups, 2)
	assert.Equal(t, []int{0, 1, 4}, groups[0])
	assert.Equal(t, []int{3, 5}, groups[1])
	assert.NotContains(t, groups, Noise)
}
