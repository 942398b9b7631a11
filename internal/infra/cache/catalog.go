package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zied7316-tech/Xaura-sub000/internal/integrations/salonservice"
)

// ErrCacheMiss возвращается, когда записи в кэше нет
var ErrCacheMiss = errors.New("catalog cache: miss")

// CatalogCache кэш каталогов салонов в Redis
// Каталог меняется редко, а читается на каждом шаге мастера,
// поэтому держим его в кэше с TTL. Ошибки Redis не фатальны:
// вызывающий код трактует их как промах и идёт в SalonService
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache создает кэш каталогов с указанным TTL
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func catalogKey(salonID string) string {
	return "catalog:" + salonID
}

// Get читает каталог салона из кэша
func (c *CatalogCache) Get(ctx context.Context, salonID string) (*salonservice.Catalog, error) {
	data, err := c.client.Get(ctx, catalogKey(salonID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("catalog cache: get: %w", err)
	}

	var catalog salonservice.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		// Битую запись убираем, чтобы не спотыкаться о неё повторно
		c.client.Del(ctx, catalogKey(salonID))
		return nil, fmt.Errorf("catalog cache: unmarshal: %w", err)
	}

	return &catalog, nil
}

// Set сохраняет каталог салона в кэш с TTL
func (c *CatalogCache) Set(ctx context.Context, salonID string, catalog *salonservice.Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("catalog cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey(salonID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache: set: %w", err)
	}
	return nil
}

// Invalidate удаляет каталог салона из кэша
func (c *CatalogCache) Invalidate(ctx context.Context, salonID string) error {
	if err := c.client.Del(ctx, catalogKey(salonID)).Err(); err != nil {
		return fmt.Errorf("catalog cache: del: %w", err)
	}
	return nil
}
