package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cheechan-golf/backend/internal/config"
)

const pingTimeout = time.Millisecond * 1500

// NewRedis connects to the single redis instance holding OTP throttle
// counters. Callers must treat an empty configured address as "throttle
// disabled" and not call this at all.
func NewRedis(cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.Address,
		Password:        cfg.Password,
		DB:              0,
		PoolSize:        cfg.PoolSize,
		ConnMaxIdleTime: 170 * time.Second,
		DialTimeout:     time.Second * 1,
		ReadTimeout:     time.Second * 1,
		WriteTimeout:    time.Second * 1,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, err
	}

	return client, nil
}
