package analysis

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/geo_pattern_analysis/internal/models"
	"github.com/shenikar/geo_pattern_analysis/internal/notify"
	"github.com/sirupsen/logrus"
)

// ReportSource определяет контракт загрузки отчетов для анализа
type ReportSource interface {
	FetchReports(ctx context.Context, lookbackDays int, requireCategory bool) ([]models.Report, error)
}

// ResultStore определяет контракт перезаписи таблиц с результатами анализа
type ResultStore interface {
	ReplaceHotspots(ctx context.Context, hotspots []models.Hotspot) error
	ReplaceCorrelations(ctx context.Context, correlations []models.Correlation) error
	ReplaceTemporalPatterns(ctx context.Context, patterns []models.TemporalPattern) error
}

// Job - одно пакетное задание анализа поверх таблицы отчетов
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

var validate = validator.New()

// publishRun отправляет событие о завершенном прогоне, если публикация настроена.
// Результат уже записан, поэтому ошибка публикации не считается ошибкой задания.
func publishRun(ctx context.Context, publisher notify.Publisher, log *logrus.Entry, job string, startedAt time.Time, reportCount, resultCount int) {
	if publisher == nil {
		return
	}

	finishedAt := time.Now()
	event := notify.RunEvent{
		RunID:       uuid.New(),
		Job:         job,
		ReportCount: reportCount,
		ResultCount: resultCount,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
		DurationMs:  finishedAt.Sub(startedAt).Milliseconds(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish run event")
	}
}
