package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	runEventQueueKey = "analysis_run_events"
)

// RunEvent - событие о завершенном прогоне задания анализа
type RunEvent struct {
	RunID       uuid.UUID `json:"run_id"`
	Job         string    `json:"job"`
	ReportCount int       `json:"report_count"`
	ResultCount int       `json:"result_count"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	DurationMs  int64     `json:"duration_ms"`
}

// Publisher - интерфейс для публикации событий о прогонах
type Publisher interface {
	Publish(ctx context.Context, event RunEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие прогона в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event RunEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal run event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, runEventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish run event to Redis: %w", err)
	}
	return nil
}
