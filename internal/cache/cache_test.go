package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetPut(t *testing.T) {
	tests := []struct {
		name      string
		put       map[string]string
		key       string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "hit",
			put:       map[string]string{"bil": "en"},
			key:       "bil",
			wantValue: "en",
			wantOK:    true,
		},
		{
			name:   "miss",
			put:    map[string]string{"bil": "en"},
			key:    "hus",
			wantOK: false,
		},
		{
			name:   "empty cache",
			key:    "bil",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string]()
			for k, v := range tt.put {
				c.Put(k, v, time.Minute)
			}

			got, ok := c.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := New[int]()
	c.Put("word", 1, time.Minute)
	c.Put("word", 2, time.Minute)

	got, ok := c.Get("word")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New[string]()
	c.now = func() time.Time { return now }

	c.Put("bil", "en", 10*time.Minute)

	now = now.Add(9 * time.Minute)
	_, ok := c.Get("bil")
	assert.True(t, ok, "entry within TTL should be served")

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("bil")
	assert.False(t, ok, "entry past TTL should not be reused")
	assert.Equal(t, 0, c.Len(), "expired entry should be evicted on access")
}
