package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"werkbon/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const servicePrefix = "werkbon."

type Client struct {
	client  *redis.Client
	cfg     config.RedisConfig
	drafts  time.Duration
	lockTTL time.Duration
}

func New(ctx context.Context, cfg config.RedisConfig, drafts config.DraftsConfig) (*Client, error) {
	client := &Client{
		cfg:     cfg,
		drafts:  drafts.TTL,
		lockTTL: drafts.LockTTL,
	}

	redisClient := redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	client.client = redisClient

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
