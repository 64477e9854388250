package analysis

// HotspotParams - параметры поиска горячих точек
type HotspotParams struct {
	LookbackDays int     `validate:"gt=0"`
	Eps          float64 `validate:"gt=0"`
	MinPoints    int     `validate:"gte=1"`
	RadiusKm     float64 `validate:"gt=0"`
}

// DefaultHotspotParams возвращает параметры по умолчанию: окно 30 дней,
// eps 0.01 в координатах широты и долготы соответствует радиусу около 1 км
func DefaultHotspotParams() HotspotParams {
	return HotspotParams{
		LookbackDays: 30,
		Eps:          0.01,
		MinPoints:    5,
		RadiusKm:     1.0,
	}
}

// CorrelationParams - параметры поиска связанных серий инцидентов
type CorrelationParams struct {
	LookbackDays       int     `validate:"gt=0"`
	Eps                float64 `validate:"gt=0"`
	MinPoints          int     `validate:"gte=1"`
	MinReports         int     `validate:"gte=1"`
	MinCategoryReports int     `validate:"gte=1"`
	MinClusterSize     int     `validate:"gte=1"`
}

// DefaultCorrelationParams возвращает параметры по умолчанию: окно 60 дней,
// кластеризация внутри категории по месту и времени
func DefaultCorrelationParams() CorrelationParams {
	return CorrelationParams{
		LookbackDays:       60,
		Eps:                0.05,
		MinPoints:          3,
		MinReports:         10,
		MinCategoryReports: 5,
		MinClusterSize:     3,
	}
}

// TemporalParams - параметры анализа временных закономерностей
type TemporalParams struct {
	LookbackDays int `validate:"gt=0"`
}

// DefaultTemporalParams возвращает параметры по умолчанию: окно 90 дней
func DefaultTemporalParams() TemporalParams {
	return TemporalParams{
		LookbackDays: 90,
	}
}
