package morphology

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
	DefaultEndpoint = "https://ws.spraakbanken.gu.se/ws/sparv/v2/"
	DefaultTimeout  = 7 * time.Second
	DefaultCacheTTL = 12 * time.Hour

	// sparvSettings requests the positional attributes the parser needs.
	sparvSettings = `{"positional_attributes":{"lexical_attributes":["pos","msd","lemma"]}}`
)

type Config struct {
	Endpoint string
	Timeout  time.Duration
	CacheTTL time.Duration
	// Metrics counts outbound requests when set. Cache hits are not counted.
	Metrics *metrics.Metrics
}

// Client queries Sparv for morphosyntactic annotations and caches successful
// results per word. It never returns an error: any failure is logged and
// reported as missing data.
type Client struct {
	httpClient *resty.Client
	endpoint   string
	cacheTTL   time.Duration
	cache      *cache.Cache[Result]
	metrics    *metrics.Metrics
}

func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
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
		cacheTTL:   cfg.CacheTTL,
		cache:      cache.New[Result](),
		metrics:    cfg.Metrics,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// FetchGenus resolves the genus and article for a Swedish word. A nil result
// means Sparv had no usable annotation or was unreachable.
func (c *Client) FetchGenus(ctx context.Context, rawWord string) *Result {
	word := strings.ToLower(strings.TrimSpace(rawWord))
	if word == "" {
		return nil
	}

	if cached, ok := c.cache.Get(word); ok {
		cached.ServedFromCache = true
		return &cached
	}

	// A carrier sentence gives Sparv enough context to annotate the word.
	probe := fmt.Sprintf("Det är %s.", word)
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"text":     probe,
			"language": "sv",
			"settings": sparvSettings,
		}).
		Get(c.endpoint)
	if err != nil {
		slog.Warn("sparv request failed", "word", word, "error", err)
		c.metrics.RecordRemoteRequest(metrics.ServiceMorphology, metrics.OutcomeError)
		return nil
	}
	if response.IsError() {
		slog.Warn("sparv responded with error status", "word", word, "status", response.StatusCode())
		c.metrics.RecordRemoteRequest(metrics.ServiceMorphology, metrics.OutcomeError)
		return nil
	}

	payload := response.String()
	if strings.TrimSpace(payload) == "" {
		c.metrics.RecordRemoteRequest(metrics.ServiceMorphology, metrics.OutcomeNoData)
		return nil
	}

	result := parseResponse([]byte(payload), word)
	if result == nil {
		c.metrics.RecordRemoteRequest(metrics.ServiceMorphology, metrics.OutcomeNoData)
		return nil
	}
	c.metrics.RecordRemoteRequest(metrics.ServiceMorphology, metrics.OutcomeOK)

	// Only successes are cached; unknown words re-attempt on every call.
	c.cache.Put(word, *result, c.cacheTTL)
	return result
}
