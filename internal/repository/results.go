package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_pattern_analysis/internal/analysis"
	"github.com/shenikar/geo_pattern_analysis/internal/models"
)

const createHotspotsTable = `
	CREATE TABLE IF NOT EXISTS hotspot_analysis (
		id SERIAL PRIMARY KEY,
		hotspot_id INT,
		center_lat NUMERIC(10,8),
		center_lng NUMERIC(11,8),
		incident_count INT,
		avg_severity NUMERIC(5,2),
		max_severity INT,
		primary_category TEXT,
		radius_km NUMERIC(5,2),
		last_updated TIMESTAMP
	);
`

const createCorrelationsTable = `
	CREATE TABLE IF NOT EXISTS crime_correlations (
		id SERIAL PRIMARY KEY,
		cluster_id TEXT,
		category TEXT,
		incident_count INT,
		center_lat NUMERIC(10,8),
		center_lng NUMERIC(11,8),
		avg_severity NUMERIC(5,2),
		time_span_days INT,
		most_common_day INT,
		most_common_hour INT,
		is_likely_organized BOOLEAN,
		confidence_score NUMERIC(3,2),
		last_updated TIMESTAMP
	);
`

const createTemporalPatternsTable = `
	CREATE TABLE IF NOT EXISTS temporal_patterns (
		id SERIAL PRIMARY KEY,
		day_of_week INT,
		hour_of_day INT,
		category TEXT,
		incident_count INT,
		avg_severity NUMERIC(5,2),
		risk_level TEXT,
		last_updated TIMESTAMP
	);
`

type ResultsRepository struct {
	db *pgxpool.Pool
}

func NewResultsRepository(db *pgxpool.Pool) analysis.ResultStore {
	return &ResultsRepository{
		db: db,
	}
}

// ReplaceHotspots перезаписывает таблицу hotspot_analysis свежими результатами
func (r *ResultsRepository) ReplaceHotspots(ctx context.Context, hotspots []models.Hotspot) error {
	if err := r.resetTable(ctx, createHotspotsTable, "hotspot_analysis"); err != nil {
		return err
	}

	columns := []string{
		"hotspot_id",
		"center_lat",
		"center_lng",
		"incident_count",
		"avg_severity",
		"max_severity",
		"primary_category",
		"radius_km",
		"last_updated",
	}
	_, err := r.db.CopyFrom(ctx, pgx.Identifier{"hotspot_analysis"}, columns,
		pgx.CopyFromSlice(len(hotspots), func(i int) ([]any, error) {
			h := hotspots[i]
			return []any{
				h.HotspotID,
				h.CenterLat,
				h.CenterLng,
				h.IncidentCount,
				h.AvgSeverity,
				h.MaxSeverity,
				h.PrimaryCategory,
				h.RadiusKm,
				h.LastUpdated,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy hotspots: %w", err)
	}
	return nil
}

// ReplaceCorrelations перезаписывает таблицу crime_correlations свежими результатами
func (r *ResultsRepository) ReplaceCorrelations(ctx context.Context, correlations []models.Correlation) error {
	if err := r.resetTable(ctx, createCorrelationsTable, "crime_correlations"); err != nil {
		return err
	}

	columns := []string{
		"cluster_id",
		"category",
		"incident_count",
		"center_lat",
		"center_lng",
		"avg_severity",
		"time_span_days",
		"most_common_day",
		"most_common_hour",
		"is_likely_organized",
		"confidence_score",
		"last_updated",
	}
	_, err := r.db.CopyFrom(ctx, pgx.Identifier{"crime_correlations"}, columns,
		pgx.CopyFromSlice(len(correlations), func(i int) ([]any, error) {
			c := correlations[i]
			return []any{
				c.ClusterID,
				c.Category,
				c.IncidentCount,
				c.CenterLat,
				c.CenterLng,
				c.AvgSeverity,
				c.TimeSpanDays,
				c.MostCommonDay,
				c.MostCommonHour,
				c.IsLikelyOrganized,
				c.ConfidenceScore,
				c.LastUpdated,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy correlations: %w", err)
	}
	return nil
}

// ReplaceTemporalPatterns перезаписывает таблицу temporal_patterns свежими результатами
func (r *ResultsRepository) ReplaceTemporalPatterns(ctx context.Context, patterns []models.TemporalPattern) error {
	if err := r.resetTable(ctx, createTemporalPatternsTable, "temporal_patterns"); err != nil {
		return err
	}

	columns := []string{
		"day_of_week",
		"hour_of_day",
		"category",
		"incident_count",
		"avg_severity",
		"risk_level",
		"last_updated",
	}
	_, err := r.db.CopyFrom(ctx, pgx.Identifier{"temporal_patterns"}, columns,
		pgx.CopyFromSlice(len(patterns), func(i int) ([]any, error) {
			p := patterns[i]
			return []any{
				p.DayOfWeek,
				p.HourOfDay,
				p.Category,
				p.IncidentCount,
				p.AvgSeverity,
				string(p.RiskLevel),
				p.LastUpdated,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy temporal patterns: %w", err)
	}
	return nil
}

// resetTable создает таблицу при отсутствии и очищает ее в одной транзакции.
// Последующая загрузка строк идет отдельным шагом через CopyFrom.
func (r *ResultsRepository) resetTable(ctx context.Context, ddl, table string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
		return fmt.Errorf("failed to truncate table %s: %w", table, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for %s: %w", table, err)
	}
	return nil
}
