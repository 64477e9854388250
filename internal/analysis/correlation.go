package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/geo_pattern_analysis/internal/cluster"
	"github.com/shenikar/geo_pattern_analysis/internal/models"
	"github.com/shenikar/geo_pattern_analysis/internal/notify"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Пороговые значения признака организованной серии
const (
	organizedMinCount    = 4
	organizedMaxSpanDays = 45
	organizedMinSeverity = 2.5
)

type correlationJob struct {
	source    ReportSource
	store     ResultStore
	publisher notify.Publisher
	logger    *logrus.Logger
	params    CorrelationParams
}

// NewCorrelationJob создает задание поиска связанных серий инцидентов внутри категорий
func NewCorrelationJob(source ReportSource, store ResultStore, publisher notify.Publisher, logger *logrus.Logger, params CorrelationParams) (Job, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("analysis: invalid correlation params: %w", err)
	}
	return &correlationJob{
		source:    source,
		store:     store,
		publisher: publisher,
		logger:    logger,
		params:    params,
	}, nil
}

func (j *correlationJob) Name() string {
	return "crime_correlation"
}

// Run кластеризует отчеты каждой категории по месту и времени и перезаписывает
// таблицу crime_correlations найденными сериями
func (j *correlationJob) Run(ctx context.Context) error {
	log := j.logger.WithFields(logrus.Fields{
		"job":           j.Name(),
		"lookback_days": j.params.LookbackDays,
	})
	log.Info("Starting correlation analysis")
	startedAt := time.Now()

	reports, err := j.source.FetchReports(ctx, j.params.LookbackDays, true)
	if err != nil {
		log.WithError(err).Error("Failed to fetch reports")
		return fmt.Errorf("analysis: could not fetch reports: %w", err)
	}
	if len(reports) < j.params.MinReports {
		log.WithField("report_count", len(reports)).Warn("Not enough data for correlation analysis")
		return nil
	}
	log.WithField("report_count", len(reports)).Info("Reports fetched")

	now := time.Now()
	correlations := make([]models.Correlation, 0)

	categories, byCategory := groupByCategory(reports)
	for _, category := range categories {
		group := byCategory[category]
		if len(group) < j.params.MinCategoryReports {
			continue
		}

		labels := cluster.DBSCAN(spatioTemporalFeatures(group), j.params.Eps, j.params.MinPoints)
		clusters := cluster.Partition(labels)

		for _, label := range sortedLabels(clusters) {
			members := clusters[label]
			if len(members) < j.params.MinClusterSize {
				continue
			}

			lats := make([]float64, 0, len(members))
			lngs := make([]float64, 0, len(members))
			sevs := make([]float64, 0, len(members))
			days := make([]int, 0, len(members))
			hours := make([]int, 0, len(members))
			times := make([]time.Time, 0, len(members))
			for _, i := range members {
				lats = append(lats, group[i].Latitude)
				lngs = append(lngs, group[i].Longitude)
				sevs = append(sevs, float64(group[i].Severity))
				days = append(days, group[i].DayOfWeek)
				hours = append(hours, group[i].HourOfDay)
				times = append(times, group[i].CreatedAt)
			}

			count := len(members)
			avgSeverity := stat.Mean(sevs, nil)
			span := spanDays(times)

			correlations = append(correlations, models.Correlation{
				ClusterID:         fmt.Sprintf("%s_%d", category, label),
				Category:          category,
				IncidentCount:     count,
				CenterLat:         stat.Mean(lats, nil),
				CenterLng:         stat.Mean(lngs, nil),
				AvgSeverity:       avgSeverity,
				TimeSpanDays:      span,
				MostCommonDay:     mostCommonInt(days),
				MostCommonHour:    mostCommonInt(hours),
				IsLikelyOrganized: organizedPattern(count, span, avgSeverity),
				ConfidenceScore:   confidenceScore(count, span, avgSeverity),
				LastUpdated:       now,
			})
		}
	}

	if len(correlations) == 0 {
		log.Warn("No significant correlations detected")
		return nil
	}

	if err := j.store.ReplaceCorrelations(ctx, correlations); err != nil {
		log.WithError(err).Error("Failed to store correlations")
		return fmt.Errorf("analysis: could not store correlations: %w", err)
	}

	log.WithFields(logrus.Fields{
		"report_count":      len(reports),
		"correlation_count": len(correlations),
	}).Info("Correlation analysis complete")

	publishRun(ctx, j.publisher, log, j.Name(), startedAt, len(reports), len(correlations))
	return nil
}

// organizedPattern сообщает, похожа ли серия на скоординированную: много инцидентов
// за ограниченный срок с заметной средней серьезностью
func organizedPattern(count, span int, avgSeverity float64) bool {
	return count >= organizedMinCount &&
		span <= organizedMaxSpanDays &&
		avgSeverity >= organizedMinSeverity
}

// confidenceScore оценивает уверенность в серии. Слагаемое за разброс во времени
// уходит в минус при span больше 60 дней, сверху итог ограничен единицей
func confidenceScore(count, span int, avgSeverity float64) float64 {
	confidence := float64(count)/10*0.4 +
		(1-float64(span)/60)*0.3 +
		avgSeverity/5*0.3
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// groupByCategory разбивает отчеты по категориям, сохраняя порядок первого появления
func groupByCategory(reports []models.Report) ([]string, map[string][]models.Report) {
	order := make([]string, 0)
	groups := make(map[string][]models.Report)
	for _, r := range reports {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}
	return order, groups
}
