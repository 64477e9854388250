package models

import "time"

// RiskLevel - уровень риска временного окна
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Hotspot представляет сводку по пространственному кластеру инцидентов
type Hotspot struct {
	HotspotID       int       `json:"hotspot_id"`
	CenterLat       float64   `json:"center_lat"`
	CenterLng       float64   `json:"center_lng"`
	IncidentCount   int       `json:"incident_count"`
	AvgSeverity     float64   `json:"avg_severity"`
	MaxSeverity     int       `json:"max_severity"`
	PrimaryCategory string    `json:"primary_category"`
	RadiusKm        float64   `json:"radius_km"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Correlation представляет пространственно-временной кластер внутри одной категории
type Correlation struct {
	ClusterID         string    `json:"cluster_id"` // "{category}_{label}"
	Category          string    `json:"category"`
	IncidentCount     int       `json:"incident_count"`
	CenterLat         float64   `json:"center_lat"`
	CenterLng         float64   `json:"center_lng"`
	AvgSeverity       float64   `json:"avg_severity"`
	TimeSpanDays      int       `json:"time_span_days"`
	MostCommonDay     int       `json:"most_common_day"`
	MostCommonHour    int       `json:"most_common_hour"`
	IsLikelyOrganized bool      `json:"is_likely_organized"`
	ConfidenceScore   float64   `json:"confidence_score"`
	LastUpdated       time.Time `json:"last_updated"`
}

// TemporalPattern представляет комбинацию (день недели, час, категория)
type TemporalPattern struct {
	DayOfWeek     int       `json:"day_of_week"`
	HourOfDay     int       `json:"hour_of_day"`
	Category      string    `json:"category"`
	IncidentCount int       `json:"incident_count"`
	AvgSeverity   float64   `json:"avg_severity"`
	RiskLevel     RiskLevel `json:"risk_level"`
	LastUpdated   time.Time `json:"last_updated"`
}
