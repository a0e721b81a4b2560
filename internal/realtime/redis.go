package realtime

import (
	"context"
	"encoding/json"
	"time"

	"gigboard_backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Publisher pushes notification events to per-user channels so connected
// clients can pick them up without polling.
type Publisher interface {
	PublishToUser(ctx context.Context, userID string, payload interface{}) error
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) PublishToUser(ctx context.Context, userID string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, "notifications:"+userID, data).Err()
}

// NoopPublisher is used when redis is unavailable; delivery falls back to the
// persisted notification list.
type NoopPublisher struct{}

func (NoopPublisher) PublishToUser(context.Context, string, interface{}) error { return nil }

var (
	_ Publisher = (*RedisPublisher)(nil)
	_ Publisher = NoopPublisher{}
)
