package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/geo_pattern_analysis/internal/models"
	"github.com/shenikar/geo_pattern_analysis/internal/notify"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

type temporalJob struct {
	source    ReportSource
	store     ResultStore
	publisher notify.Publisher
	logger    *logrus.Logger
	params    TemporalParams
}

// NewTemporalJob создает задание анализа временных закономерностей
func NewTemporalJob(source ReportSource, store ResultStore, publisher notify.Publisher, logger *logrus.Logger, params TemporalParams) (Job, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("analysis: invalid temporal params: %w", err)
	}
	return &temporalJob{
		source:    source,
		store:     store,
		publisher: publisher,
		logger:    logger,
		params:    params,
	}, nil
}

func (j *temporalJob) Name() string {
	return "temporal_analysis"
}

// timeSlot - ключ группировки: день недели, час и категория
type timeSlot struct {
	day      int
	hour     int
	category string
}

// Run группирует отчеты по точному совпадению дня недели, часа и категории
// и перезаписывает таблицу temporal_patterns с уровнем риска на каждую группу
func (j *temporalJob) Run(ctx context.Context) error {
	log := j.logger.WithFields(logrus.Fields{
		"job":           j.Name(),
		"lookback_days": j.params.LookbackDays,
	})
	log.Info("Starting temporal analysis")
	startedAt := time.Now()

	reports, err := j.source.FetchReports(ctx, j.params.LookbackDays, true)
	if err != nil {
		log.WithError(err).Error("Failed to fetch reports")
		return fmt.Errorf("analysis: could not fetch reports: %w", err)
	}
	if len(reports) == 0 {
		log.Warn("No reports found")
		return nil
	}
	log.WithField("report_count", len(reports)).Info("Reports fetched")

	buckets := make(map[timeSlot][]float64)
	for _, r := range reports {
		slot := timeSlot{day: r.DayOfWeek, hour: r.HourOfDay, category: r.Category}
		buckets[slot] = append(buckets[slot], float64(r.Severity))
	}

	slots := make([]timeSlot, 0, len(buckets))
	for slot := range buckets {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, k int) bool {
		if slots[i].day != slots[k].day {
			return slots[i].day < slots[k].day
		}
		if slots[i].hour != slots[k].hour {
			return slots[i].hour < slots[k].hour
		}
		return slots[i].category < slots[k].category
	})

	now := time.Now()
	patterns := make([]models.TemporalPattern, 0, len(slots))
	for _, slot := range slots {
		sevs := buckets[slot]
		avgSeverity := stat.Mean(sevs, nil)

		patterns = append(patterns, models.TemporalPattern{
			DayOfWeek:     slot.day,
			HourOfDay:     slot.hour,
			Category:      slot.category,
			IncidentCount: len(sevs),
			AvgSeverity:   avgSeverity,
			RiskLevel:     riskLevel(avgSeverity, len(sevs)),
			LastUpdated:   now,
		})
	}

	if err := j.store.ReplaceTemporalPatterns(ctx, patterns); err != nil {
		log.WithError(err).Error("Failed to store temporal patterns")
		return fmt.Errorf("analysis: could not store temporal patterns: %w", err)
	}

	log.WithFields(logrus.Fields{
		"report_count":  len(reports),
		"pattern_count": len(patterns),
	}).Info("Temporal analysis complete")

	publishRun(ctx, j.publisher, log, j.Name(), startedAt, len(reports), len(patterns))
	return nil
}

// riskLevel классифицирует временное окно, первый подошедший уровень выигрывает
func riskLevel(avgSeverity float64, count int) models.RiskLevel {
	switch {
	case avgSeverity >= 4 && count >= 3:
		return models.RiskCritical
	case avgSeverity >= 3 && count >= 3:
		return models.RiskHigh
	case avgSeverity >= 2 || count >= 5:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
