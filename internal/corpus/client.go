// Package corpus fetches attested example sentences from the Korp corpus
// search service.
package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/enorett/enorett/internal/cache"
	"github.com/enorett/enorett/internal/metrics"
)

const (
	DefaultEndpoint = "https://ws.spraakbanken.gu.se/ws/korp/v8/query"
	// Multiple corpora can make Korp reject the query, so default to one.
	DefaultCorpora  = "rom99"
	DefaultLimit    = 5
	DefaultTimeout  = 7 * time.Second
	DefaultCacheTTL = 6 * time.Hour
)

type Config struct {
	Endpoint string
	Corpora  string
	Timeout  time.Duration
	CacheTTL time.Duration
	// Metrics counts outbound requests when set. Cache hits are not counted.
	Metrics *metrics.Metrics
}

// Result holds deduplicated example sentences for one word.
type Result struct {
	Examples        []string
	ServedFromCache bool
}

// Client queries Korp and caches successful results per word. Like the
// morphology client it never returns an error, only nil for "no data".
type Client struct {
	httpClient *resty.Client
	endpoint   string
	corpora    string
	cacheTTL   time.Duration
	cache      *cache.Cache[Result]
	metrics    *metrics.Metrics
}

func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Corpora == "" {
		cfg.Corpora = DefaultCorpora
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	httpClient := resty.New()
	httpClient.SetTimeout(cfg.Timeout)

	return &Client{
		httpClient: httpClient,
		endpoint:   cfg.Endpoint,
		corpora:    cfg.Corpora,
		cacheTTL:   cfg.CacheTTL,
		cache:      cache.New[Result](),
		metrics:    cfg.Metrics,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// FetchExamples returns up to limit example sentences containing the word,
// or nil when the corpus yields nothing usable.
func (c *Client) FetchExamples(ctx context.Context, rawWord string, limit int) *Result {
	word := strings.ToLower(strings.TrimSpace(rawWord))
	if word == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	if cached, ok := c.cache.Get(word); ok {
		cached.ServedFromCache = true
		return &cached
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"corpus": c.corpora,
			// Korp v8 expects CQP query syntax
			"cqp": fmt.Sprintf(`[word = "%s"]`, word),
		}).
		Get(c.endpoint)
	if err != nil {
		slog.Warn("korp request failed", "word", word, "error", err)
		c.metrics.RecordRemoteRequest(metrics.ServiceCorpus, metrics.OutcomeError)
		return nil
	}
	if response.IsError() {
		slog.Warn("korp responded with error status", "word", word, "status", response.StatusCode())
		c.metrics.RecordRemoteRequest(metrics.ServiceCorpus, metrics.OutcomeError)
		return nil
	}

	examples := parseExamples([]byte(response.String()), limit)
	if len(examples) == 0 {
		c.metrics.RecordRemoteRequest(metrics.ServiceCorpus, metrics.OutcomeNoData)
		return nil
	}
	c.metrics.RecordRemoteRequest(metrics.ServiceCorpus, metrics.OutcomeOK)

	result := Result{Examples: examples}
	c.cache.Put(word, result, c.cacheTTL)
	return &result
}
