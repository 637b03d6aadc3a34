package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explosion-backend/internal/domain"
)

func TestTTLCacheRoundTrip(t *testing.T) {
	cache := NewTTLCache[domain.PriceSeries](time.Minute)

	series := domain.PriceSeries{
		Closes:  []float64{1, 2, 3},
		Volumes: []float64{10, 20, 30},
	}
	cache.Set("BTCUSDT:1h:50", series)

	got, ok := cache.Get("BTCUSDT:1h:50")
	require.True(t, ok)
	assert.Equal(t, series.Closes, got.Closes)
	assert.Equal(t, series.Volumes, got.Volumes)
}

func TestTTLCacheMissingKey(t *testing.T) {
	cache := NewTTLCache[int](time.Minute)

	_, ok := cache.Get("nope")
	assert.False(t, ok)
}

func TestTTLCacheExpiry(t *testing.T) {
	cache := NewTTLCache[string](time.Minute)

	current := time.Unix(1000, 0)
	cache.now = func() time.Time { return current }

	cache.Set("k", "v")

	// still fresh at exactly the TTL boundary
	current = current.Add(time.Minute)
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	// one tick past the TTL the entry is evicted lazily
	current = current.Add(time.Nanosecond)
	_, ok = cache.Get("k")
	assert.False(t, ok)

	// and stays gone
	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestTTLCacheSetResetsClock(t *testing.T) {
	cache := NewTTLCache[int](time.Minute)

	current := time.Unix(1000, 0)
	cache.now = func() time.Time { return current }

	cache.Set("k", 1)
	current = current.Add(50 * time.Second)
	cache.Set("k", 2)

	// 70s after first set, 20s after second: still alive with the new value
	current = current.Add(20 * time.Second)
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestInMemoryCandidateRepository(t *testing.T) {
	repo := NewInMemoryCandidateRepository()

	assert.Empty(t, repo.LatestResult().Data)

	result := domain.ViewResult{
		Status:    "success",
		Timestamp: "2024-01-01T00:00:00Z",
		Data: []domain.CandidateResult{
			{Symbol: "AAAUSDT", ExplosionScore: 90},
			{Symbol: "BBBUSDT", ExplosionScore: 70},
		},
	}
	repo.SaveResult(result)

	got := repo.LatestResult()
	require.Len(t, got.Data, 2)
	assert.Equal(t, "AAAUSDT", got.Data[0].Symbol)

	// mutating the returned slice must not affect the stored result
	got.Data[0].Symbol = "MUTATED"
	assert.Equal(t, "AAAUSDT", repo.LatestResult().Data[0].Symbol)
}

func TestTokenRepository(t *testing.T) {
	repo := NewTokenRepository()

	repo.Register("tok-1", "android")
	repo.Register("tok-2", "ios")
	repo.Register("tok-1", "android") // re-register is idempotent

	assert.Equal(t, 2, repo.Count())
	assert.ElementsMatch(t, []string{"tok-1", "tok-2"}, repo.Tokens())

	repo.Unregister("tok-1")
	assert.Equal(t, 1, repo.Count())
	assert.ElementsMatch(t, []string{"tok-2"}, repo.Tokens())
}
