package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shenikar/geo_pattern_analysis/internal/analysis"
	"github.com/shenikar/geo_pattern_analysis/internal/config"
	"github.com/shenikar/geo_pattern_analysis/internal/notify"
	"github.com/shenikar/geo_pattern_analysis/internal/repository"
	"github.com/shenikar/geo_pattern_analysis/pkg/logger"
	"github.com/shenikar/geo_pattern_analysis/pkg/postgres"
	redisclient "github.com/shenikar/geo_pattern_analysis/pkg/redis"
	"github.com/sirupsen/logrus"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Публикация и доставка событий о прогонах включаются только при настроенном Redis
	var publisher notify.Publisher
	if cfg.NotifyEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		publisher = notify.NewRedisPublisher(redisClient)

		worker := notify.NewWorker(redisClient, log, cfg)
		worker.Start(ctx)
	}

	// Инициализация репозиториев
	source := repository.NewReportsRepository(dbpool)
	store := repository.NewResultsRepository(dbpool)

	hotspotJob, err := analysis.NewHotspotJob(source, store, publisher, log, analysis.DefaultHotspotParams())
	if err != nil {
		log.Fatalf("Failed to create hotspot job: %v", err)
	}
	correlationJob, err := analysis.NewCorrelationJob(source, store, publisher, log, analysis.DefaultCorrelationParams())
	if err != nil {
		log.Fatalf("Failed to create correlation job: %v", err)
	}
	temporalJob, err := analysis.NewTemporalJob(source, store, publisher, log, analysis.DefaultTemporalParams())
	if err != nil {
		log.Fatalf("Failed to create temporal job: %v", err)
	}

	// Задания выполняются строго последовательно в фиксированном порядке.
	// Ошибка одного прогона не останавливает демона, следующий запуск пойдет по расписанию.
	jobs := []analysis.Job{hotspotJob, correlationJob, temporalJob}
	runAll := func() {
		for _, job := range jobs {
			if err := job.Run(ctx); err != nil {
				log.WithError(err).WithField("job", job.Name()).Error("Analysis job failed")
			}
		}
	}

	if cfg.RunOnStart {
		log.Info("Running analysis jobs on start")
		runAll()
	}

	// Настройка планировщика
	c := newCron(log)
	if _, err := c.AddFunc(cfg.AnalysisSchedule, runAll); err != nil {
		log.Fatalf("Failed to schedule analysis jobs: %v", err)
	}
	c.Start()
	log.Infof("Scheduler started with schedule %q", cfg.AnalysisSchedule)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, stopping scheduler...")

	// Даем текущему прогону завершиться, но не дольше таймаута
	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
		log.Info("Scheduler gracefully stopped")
	case <-time.After(30 * time.Second):
		log.Warn("Timeout waiting for running jobs, exiting")
	}
}

// newCron создает планировщик, пропускающий активацию, пока предыдущий прогон не завершился.
func newCron(log *logrus.Logger) *cron.Cron {
	return cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.VerbosePrintfLogger(log))))
}
