package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_pattern_analysis/internal/analysis"
	"github.com/shenikar/geo_pattern_analysis/internal/models"
)

type ReportsRepository struct {
	db *pgxpool.Pool
}

func NewReportsRepository(db *pgxpool.Pool) analysis.ReportSource {
	return &ReportsRepository{
		db: db,
	}
}

// FetchReports возвращает завершенные геотегированные отчеты за последние lookbackDays дней,
// упорядоченные по created_at и id. При requireCategory отбрасываются отчеты без категории,
// иначе категория подставляется как 'other', а серьезность как 1.
func (r *ReportsRepository) FetchReports(ctx context.Context, lookbackDays int, requireCategory bool) ([]models.Report, error) {
	query := `
		SELECT
			r.id,
			r.latitude::float AS latitude,
			r.longitude::float AS longitude,
			COALESCE(ra.category, 'other') AS category,
			COALESCE(ra.severity, 1) AS severity,
			r.created_at,
			EXTRACT(DOW FROM r.created_at)::int AS day_of_week,
			EXTRACT(HOUR FROM r.created_at)::int AS hour_of_day
		FROM reports r
		LEFT JOIN report_analysis ra ON ra.report_id = r.id
		WHERE r.latitude IS NOT NULL
		  AND r.longitude IS NOT NULL
		  AND r.report_status IN ('complete', 'completed')
		  AND r.created_at > NOW() - ($1 * INTERVAL '1 day')
	`
	if requireCategory {
		query += `  AND ra.category IS NOT NULL
	`
	}
	query += `	ORDER BY r.created_at, r.id;`

	rows, err := r.db.Query(ctx, query, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var report models.Report
		err := rows.Scan(
			&report.ID,
			&report.Latitude,
			&report.Longitude,
			&report.Category,
			&report.Severity,
			&report.CreatedAt,
			&report.DayOfWeek,
			&report.HourOfDay,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reports iteration: %w", err)
	}
	return reports, nil
}
