package morphology

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enorett/enorett/internal/dictionary"
	"github.com/enorett/enorett/internal/metrics"
)

func TestClient_FetchGenus(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "Det är bil.", r.URL.Query().Get("text"))
		assert.Equal(t, "sv", r.URL.Query().Get("language"))
		assert.NotEmpty(t, r.URL.Query().Get("settings"))
		_, _ = w.Write([]byte(sparvSample))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	defer func() {
		_ = client.Close()
	}()

	got := client.FetchGenus(context.Background(), " Bil ")
	require.NotNil(t, got)
	assert.Equal(t, dictionary.ArticleEn, got.Article)
	assert.Equal(t, GenusUtrum, got.Genus)
	assert.False(t, got.ServedFromCache)

	cached := client.FetchGenus(context.Background(), "bil")
	require.NotNil(t, cached)
	assert.True(t, cached.ServedFromCache)
	assert.Equal(t, got.Article, cached.Article)
	assert.Equal(t, 1, requests, "second call must be served from cache")
}

func TestClient_FetchGenus_CacheTTLExpiry(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(sparvSample))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, CacheTTL: time.Millisecond})
	defer func() {
		_ = client.Close()
	}()

	require.NotNil(t, client.FetchGenus(context.Background(), "bil"))
	time.Sleep(5 * time.Millisecond)
	require.NotNil(t, client.FetchGenus(context.Background(), "bil"))

	assert.Equal(t, 2, requests, "expired cache entry must trigger a new request")
}

func TestClient_FetchGenus_NoData(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("  "))
			},
		},
		{
			name: "word missing from annotation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<corpus><w msd="NN.UTR.SIN.IND.NOM" lemma="|annan|">annan</w></corpus>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(Config{Endpoint: server.URL})
			defer func() {
				_ = client.Close()
			}()

			assert.Nil(t, client.FetchGenus(context.Background(), "bil"))
		})
	}
}

func TestClient_FetchGenus_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(sparvSample))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, Timeout: 20 * time.Millisecond})
	defer func() {
		_ = client.Close()
	}()

	assert.Nil(t, client.FetchGenus(context.Background(), "bil"), "timeout is a clean no-data outcome")
}

func TestClient_FetchGenus_EmptyWord(t *testing.T) {
	client := NewClient(Config{Endpoint: "http://localhost:0"})
	defer func() {
		_ = client.Close()
	}()

	assert.Nil(t, client.FetchGenus(context.Background(), "   "))
}

func TestClient_FetchGenus_RecordsRequestOutcomes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sparvSample))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	client := NewClient(Config{Endpoint: server.URL, Metrics: metrics.New(registry)})
	defer func() {
		_ = client.Close()
	}()

	require.NotNil(t, client.FetchGenus(context.Background(), "bil"))
	// Cache hits are not remote requests.
	require.NotNil(t, client.FetchGenus(context.Background(), "bil"))

	families, err := registry.Gather()
	require.NoError(t, err)
	var recorded float64
	for _, family := range families {
		if family.GetName() != "enorett_remote_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			recorded += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), recorded)
}

func TestClient_FetchGenus_FailuresAreNotCached(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	defer func() {
		_ = client.Close()
	}()

	assert.Nil(t, client.FetchGenus(context.Background(), "bil"))
	assert.Nil(t, client.FetchGenus(context.Background(), "bil"))
	assert.Equal(t, 2, requests, "failed lookups re-attempt on every call")
}
