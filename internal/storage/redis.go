package storage

import (
	"context"
	"encoding/json"
	"time"

	"qrmenu/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds published menu snapshots as JSON blobs with a TTL.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MenuKey(restaurantID string) string {
	return "menu:" + restaurantID
}

func (c *RedisCache) GetMenu(ctx context.Context, key string) (*domain.Menu, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var menu domain.Menu
	if err := json.Unmarshal(payload, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, key string, menu *domain.Menu) error {
	payload, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// RedisPopularity keeps one sorted set of item event counts per
// restaurant per day.
type RedisPopularity struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPopularity(client *redis.Client, ttl time.Duration) *RedisPopularity {
	return &RedisPopularity{Client: client, TTL: ttl}
}

func (p *RedisPopularity) dailyKey(restaurantID string, day time.Time) string {
	return "popular:" + day.Format("2006-01-02") + ":" + restaurantID
}

func (p *RedisPopularity) RecordItemEvent(ctx context.Context, restaurantID, itemID string, day time.Time) error {
	key := p.dailyKey(restaurantID, day)
	if err := p.Client.ZIncrBy(ctx, key, 1, itemID).Err(); err != nil {
		return err
	}
	return p.Client.Expire(ctx, key, p.TTL).Err()
}

func (p *RedisPopularity) TopItems(ctx context.Context, restaurantID string, day time.Time, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = 5
	}

	result, err := p.Client.ZRevRangeWithScores(ctx, p.dailyKey(restaurantID, day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ranked := []domain.PopularItem{}
	for _, member := range result {
		itemID, ok := member.Member.(string)
		if !ok {
			continue
		}
		ranked = append(ranked, domain.PopularItem{ItemID: itemID, Count: member.Score})
	}
	return ranked, nil
}
