package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/geo_pattern_analysis/internal/cluster"
	"github.com/shenikar/geo_pattern_analysis/internal/models"
	"github.com/shenikar/geo_pattern_analysis/internal/notify"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type hotspotJob struct {
	source    ReportSource
	store     ResultStore
	publisher notify.Publisher
	logger    *logrus.Logger
	params    HotspotParams
}

// NewHotspotJob создает задание поиска географических скоплений инцидентов
func NewHotspotJob(source ReportSource, store ResultStore, publisher notify.Publisher, logger *logrus.Logger, params HotspotParams) (Job, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("analysis: invalid hotspot params: %w", err)
	}
	return &hotspotJob{
		source:    source,
		store:     store,
		publisher: publisher,
		logger:    logger,
		params:    params,
	}, nil
}

func (j *hotspotJob) Name() string {
	return "hotspot_detection"
}

// Run загружает отчеты за окно анализа, кластеризует их по координатам
// и перезаписывает таблицу hotspot_analysis сводками по кластерам
func (j *hotspotJob) Run(ctx context.Context) error {
	log := j.logger.WithFields(logrus.Fields{
		"job":           j.Name(),
		"lookback_days": j.params.LookbackDays,
	})
	log.Info("Starting hotspot detection")
	startedAt := time.Now()

	reports, err := j.source.FetchReports(ctx, j.params.LookbackDays, false)
	if err != nil {
		log.WithError(err).Error("Failed to fetch reports")
		return fmt.Errorf("analysis: could not fetch reports: %w", err)
	}
	if len(reports) == 0 {
		log.Warn("No reports with location data found")
		return nil
	}
	log.WithField("report_count", len(reports)).Info("Reports fetched")

	labels := cluster.DBSCAN(spatialFeatures(reports), j.params.Eps, j.params.MinPoints)
	groups := cluster.Partition(labels)
	if len(groups) == 0 {
		log.Warn("No hotspots detected")
		return nil
	}

	now := time.Now()
	hotspots := make([]models.Hotspot, 0, len(groups))
	for _, label := range sortedLabels(groups) {
		members := groups[label]

		lats := make([]float64, 0, len(members))
		lngs := make([]float64, 0, len(members))
		sevs := make([]float64, 0, len(members))
		cats := make([]string, 0, len(members))
		for _, i := range members {
			lats = append(lats, reports[i].Latitude)
			lngs = append(lngs, reports[i].Longitude)
			sevs = append(sevs, float64(reports[i].Severity))
			cats = append(cats, reports[i].Category)
		}

		hotspots = append(hotspots, models.Hotspot{
			HotspotID:       int(label),
			CenterLat:       stat.Mean(lats, nil),
			CenterLng:       stat.Mean(lngs, nil),
			IncidentCount:   len(members),
			AvgSeverity:     stat.Mean(sevs, nil),
			MaxSeverity:     int(floats.Max(sevs)),
			PrimaryCategory: mostCommonString(cats),
			RadiusKm:        j.params.RadiusKm,
			LastUpdated:     now,
		})
	}

	if err := j.store.ReplaceHotspots(ctx, hotspots); err != nil {
		log.WithError(err).Error("Failed to store hotspots")
		return fmt.Errorf("analysis: could not store hotspots: %w", err)
	}

	log.WithFields(logrus.Fields{
		"report_count":  len(reports),
		"hotspot_count": len(hotspots),
	}).Info("Hotspot detection complete")

	publishRun(ctx, j.publisher, log, j.Name(), startedAt, len(reports), len(hotspots))
	return nil
}
