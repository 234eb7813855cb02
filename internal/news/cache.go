package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheKeyPrefix = "wordlens:news:"

// Cache stores successful pages by query.
type Cache interface {
	Get(ctx context.Context, query string) (Page, bool, error)
	Set(ctx context.Context, query string, page Page) error
}

type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(query string) string {
	return cacheKeyPrefix + strings.ToLower(query)
}

func (c *RedisCache) Get(ctx context.Context, query string) (Page, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, fmt.Errorf("client.Get > %w", err)
	}

	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return Page{}, false, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return page, true, nil
}

func (c *RedisCache) Set(ctx context.Context, query string, page Page) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(query), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set > %w", err)
	}
	return nil
}

// Searcher looks up a page of articles for a query.
type Searcher interface {
	Search(ctx context.Context, query string) (Page, error)
}

// CachedClient serves pages from a Cache and falls through to next on a
// miss. Cache failures are logged and never fail a lookup. Failures from
// next are not cached.
type CachedClient struct {
	next  Searcher
	cache Cache
}

func NewCachedClient(next Searcher, cache Cache) *CachedClient {
	return &CachedClient{next: next, cache: cache}
}

func (c *CachedClient) Search(ctx context.Context, query string) (Page, error) {
	page, ok, err := c.cache.Get(ctx, query)
	if err != nil {
		slog.Default().WarnContext(ctx, "news cache read failed", slog.String("query", query), slog.Any("error", err))
	}
	if ok {
		return page, nil
	}

	page, err = c.next.Search(ctx, query)
	if err != nil {
		return Page{}, err
	}
	if err := c.cache.Set(ctx, query, page); err != nil {
		slog.Default().WarnContext(ctx, "news cache write failed", slog.String("query", query), slog.Any("error", err))
	}
	return page, nil
}
