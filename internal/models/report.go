package models

import (
	"time"

	"github.com/google/uuid"
)

// Report представляет геотегированный отчет, загруженный из основного приложения.
// DayOfWeek и HourOfDay вычисляются на стороне БД (EXTRACT), 0=воскресенье.
type Report struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Category  string    `json:"category"`
	Severity  int       `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	DayOfWeek int       `json:"day_of_week"`
	HourOfDay int       `json:"hour_of_day"`
}
