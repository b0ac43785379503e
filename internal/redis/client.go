package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client caches hot dashboard reads: per-user unread totals and list
// payloads. Entries are invalidated on every mutation, so a miss just falls
// through to the database.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Unread totals

func (c *Client) SetUnreadTotal(userID uint, total int64, ttl time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf("unread:%d", userID)
	return c.rdb.Set(ctx, key, total, ttl).Err()
}

func (c *Client) GetUnreadTotal(userID uint) (int64, error) {
	ctx := context.Background()
	key := fmt.Sprintf("unread:%d", userID)
	val, err := c.rdb.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("unread total not cached")
		}
		return 0, fmt.Errorf("failed to get unread total: %w", err)
	}
	return val, nil
}

func (c *Client) DeleteUnreadTotal(userID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, fmt.Sprintf("unread:%d", userID)).Err()
}

// List caches

func (c *Client) SetList(name string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal list cache: %w", err)
	}

	return c.rdb.Set(ctx, "list:"+name, jsonData, ttl).Err()
}

func (c *Client) GetList(name string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "list:"+name).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("list not cached")
		}
		return fmt.Errorf("failed to get list cache: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) InvalidateList(name string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "list:"+name).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
