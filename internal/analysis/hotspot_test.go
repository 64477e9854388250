package analysis

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/geo_pattern_analysis/internal/analysis/mocks"
	"github.com/shenikar/geo_pattern_analysis/internal/models"
	"github.com/shenikar/geo_pattern_analysis/internal/notify"
	notify_mocks "github.com/shenikar/geo_pattern_analysis/internal/notify/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHotspotJob — вспомогательная функция для создания задания с моками.
func newTestHotspotJob(t *testing.T, params HotspotParams) (Job, *mocks.MockReportSource, *mocks.MockResultStore, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockReportSource(ctrl)
	storeMock := mocks.NewMockResultStore(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	job, err := NewHotspotJob(sourceMock, storeMock, publisherMock, logger, params)
	require.NoError(t, err)
	return job, sourceMock, storeMock, publisherMock
}

// denseReports возвращает пять отчетов в пределах километра и один удаленный
func denseReports() []models.Report {
	return []models.Report{
		{Latitude: 55.750, Longitude: 37.610, Category: "theft", Severity: 3},
		{Latitude: 55.751, Longitude: 37.611, Category: "theft", Severity: 3},
		{Latitude: 55.752, Longitude: 37.612, Category: "vandalism", Severity: 4},
		{Latitude: 55.753, Longitude: 37.613, Category: "vandalism", Severity: 2},
		{Latitude: 55.754, Longitude: 37.614, Category: "theft", Severity: 5},
		{Latitude: 40.000, Longitude: 30.000, Category: "other", Severity: 1},
	}
}

func TestHotspotJob_Run_Success(t *testing.T) {
	// Подготовка
	job, sourceMock, storeMock, publisherMock := newTestHotspotJob(t, DefaultHotspotParams())
	ctx := context.Background()
	reports := denseReports()

	// Ожидания
	sourceMock.EXPECT().
		FetchReports(ctx, 30, false).
		Return(reports, nil).
		Times(1)

	storeMock.EXPECT().
		ReplaceHotspots(ctx, gomock.Any()).
		// Удаленная точка остается шумом и не попадает в сводку
		Do(func(ctx context.Context, hotspots []models.Hotspot) {
			require.Len(t, hotspots, 1)
			h := hotspots[0]
			assert.Equal(t, 0, h.HotspotID)
			assert.Equal(t, 5, h.IncidentCount)
			assert.InDelta(t, 55.752, h.CenterLat, 1e-9)
			assert.InDelta(t, 37.612, h.CenterLng, 1e-9)
			assert.InDelta(t, 3.4, h.AvgSeverity, 1e-9)
			assert.Equal(t, 5, h.MaxSeverity)
			assert.Equal(t, "theft", h.PrimaryCategory)
			assert.Equal(t, 1.0, h.RadiusKm)
			assert.False(t, h.LastUpdated.IsZero())
		}).
		Return(nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event notify.RunEvent) {
			assert.Equal(t, "hotspot_detection", event.Job)
			assert.Equal(t, 6, event.ReportCount)
			assert.Equal(t, 1, event.ResultCount)
		}).
		Return(nil).
		Times(1)

	// Действие
	err := job.Run(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestHotspotJob_Run_NoReports(t *testing.T) {
	// Подготовка
	job, sourceMock, storeMock, publisherMock := newTestHotspotJob(t, DefaultHotspotParams())
	ctx := context.Background()

	// Ожидания: пустая выборка завершает прогон без записи и публикации
	sourceMock.EXPECT().
		FetchReports(ctx, 30, false).
		Return([]models.Report{}, nil).
		Times(1)
	storeMock.EXPECT().ReplaceHotspots(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := job.Run(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestHotspotJob_Run_NoClusters(t *testing.T) {
	// Подготовка: четыре точки, разбросанные по разным городам
	job, sourceMock, storeMock, publisherMock := newTestHotspotJob(t, DefaultHotspotParams())
	ctx := context.Background()
	scattered := []models.Report{
		{Latitude: 55.75, Longitude: 37.61, Category: "theft", Severity: 3},
		{Latitude: 59.94, Longitude: 30.31, Category: "theft", Severity: 3},
		{Latitude: 56.84, Longitude: 60.65, Category: "theft", Severity: 3},
		{Latitude: 55.03, Longitude: 82.92, Category: "theft", Severity: 3},
	}

	// Ожидания
	sourceMock.EXPECT().
		FetchReports(ctx, 30, false).
		Return(scattered, nil).
		Times(1)
	storeMock.EXPECT().ReplaceHotspots(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := job.Run(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestHotspotJob_Run_FetchError(t *testing.T) {
	// Подготовка
	job, sourceMock, storeMock, _ := newTestHotspotJob(t, DefaultHotspotParams())
	ctx := context.Background()
	dbError := fmt.Errorf("соединение потеряно")

	// Ожидания
	sourceMock.EXPECT().
		FetchReports(ctx, 30, false).
		Return(nil, dbError).
		Times(1)
	storeMock.EXPECT().ReplaceHotspots(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := job.Run(ctx)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not fetch reports")
}

func TestHotspotJob_Run_StoreError(t *testing.T) {
	// Подготовка
	job, sourceMock, storeMock, publisherMock := newTestHotspotJob(t, DefaultHotspotParams())
	ctx := context.Background()
	dbError := fmt.Errorf("таблица заблокирована")

	// Ожидания: при ошибке записи событие не публикуется
	sourceMock.EXPECT().
		FetchReports(ctx, 30, false).
		Return(denseReports(), nil).
		Times(1)
	storeMock.EXPECT().
		ReplaceHotspots(ctx, gomock.Any()).
		Return(dbError).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := job.Run(ctx)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not store hotspots")
}

func TestHotspotJob_Run_WithoutPublisher(t *testing.T) {
	// Подготовка: публикация событий не настроена
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockReportSource(ctrl)
	storeMock := mocks.NewMockResultStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	job, err := NewHotspotJob(sourceMock, storeMock, nil, logger, DefaultHotspotParams())
	require.NoError(t, err)
	ctx := context.Background()

	// Ожидания
	sourceMock.EXPECT().
		FetchReports(ctx, 30, false).
		Return(denseReports(), nil).
		Times(1)
	storeMock.EXPECT().
		ReplaceHotspots(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err = job.Run(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestNewHotspotJob_InvalidParams(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockReportSource(ctrl)
	storeMock := mocks.NewMockResultStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	params := DefaultHotspotParams()
	params.Eps = 0

	// Действие
	job, err := NewHotspotJob(sourceMock, storeMock, nil, logger, params)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, job)
	assert.ErrorContains(t, err, "invalid hotspot params")
}
