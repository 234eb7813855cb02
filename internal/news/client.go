// Package news looks up recent articles mentioning a word through the
// APITube news API.
package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-redis/redis/v8"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordlens/internal/config"
)

// StatusError is a non-200 response from the news API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("news api status %d: %s", e.Code, e.Body)
}

type Client struct {
	httpClient *resty.Client
	url        string
	apiKey     string
	perPage    int
}

func NewClient(cfg config.NewsConfig) *Client {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		url:        cfg.BaseURL,
		apiKey:     cfg.APIKey,
		perPage:    cfg.PerPage,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Search returns the latest articles whose title mentions query.
func (c *Client) Search(ctx context.Context, query string) (Page, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"title":    query,
			"api_key":  c.apiKey,
			"per_page": strconv.Itoa(c.perPage),
		}).
		Post(c.url)
	if err != nil {
		return Page{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		slog.Default().WarnContext(ctx, "news api request failed",
			slog.String("query", query),
			slog.Int("status", response.StatusCode()),
		)
		return Page{}, &StatusError{Code: response.StatusCode(), Body: response.String()}
	}

	var decoded apiResponse
	if err := json.Unmarshal([]byte(response.String()), &decoded); err != nil {
		return Page{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return decoded.toPage(), nil
}

// NewSearcherFromConfig builds a Client, wrapped in a Redis-backed
// CachedClient when a Redis address is configured. closeFn releases both.
func NewSearcherFromConfig(cfg config.NewsConfig) (searcher Searcher, closeFn func() error) {
	client := NewClient(cfg)
	if cfg.Cache.RedisAddr == "" {
		return client, client.Close
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
	return NewCachedClient(client, NewRedisCache(rdb, cfg.Cache.TTL)), func() error {
		return errors.Join(client.Close(), rdb.Close())
	}
}
