package weather

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKey = "weather:report"
	cacheTTL = 10 * time.Minute
)

// Cache guarda o último relatório no Redis. Qualquer erro do Redis é
// tratado como cache miss: a API externa continua sendo o fallback.
type Cache struct {
	rdb *redis.Client
}

func NewCache(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Cache) Get(ctx context.Context) (*Report, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey).Result()
	if err != nil {
		return nil, false
	}

	var report Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, false
	}
	return &report, true
}

func (c *Cache) Set(ctx context.Context, report *Report) {
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey, raw, cacheTTL)
}
