package main

import (
	"context"

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Публикация событий о прогонах включается только при настроенном Redis
	var publisher notify.Publisher
	if cfg.NotifyEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
		publisher = notify.NewRedisPublisher(redisClient)
	}

	// Инициализация репозиториев и задания
	source := repository.NewReportsRepository(dbpool)
	store := repository.NewResultsRepository(dbpool)

	job, err := analysis.NewCorrelationJob(source, store, publisher, log, analysis.DefaultCorrelationParams())
	if err != nil {
		log.Fatalf("Failed to create correlation job: %v", err)
	}

	if err := job.Run(ctx); err != nil {
		log.Fatalf("Correlation analysis failed: %v", err)
	}
}
