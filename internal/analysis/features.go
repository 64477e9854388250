package analysis

import "github.com/shenikar/geo_pattern_analysis/internal/models"

// Веса признаков при совместной кластеризации по месту и времени
const (
	locationWeight = 0.7
	timeWeight     = 0.3
)

// spatialFeatures строит матрицу признаков из сырых координат
func spatialFeatures(reports []models.Report) [][]float64 {
	points := make([][]float64, len(reports))
	for i, r := range reports {
		points[i] = []float64{r.Latitude, r.Longitude}
	}
	return points
}

// spatioTemporalFeatures строит матрицу признаков из координат и нормированных
// дня недели и часа: место весит 70%, время 30%
func spatioTemporalFeatures(reports []models.Report) [][]float64 {
	points := make([][]float64, len(reports))
	for i, r := range reports {
		points[i] = []float64{
			r.Latitude * locationWeight,
			r.Longitude * locationWeight,
			float64(r.DayOfWeek) / 7.0 * timeWeight,
			float64(r.HourOfDay) / 24.0 * timeWeight,
		}
	}
	return points
}
