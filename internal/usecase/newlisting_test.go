package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explosion-backend/internal/domain"
)

func plausibleListing(symbol string) domain.TickerSnapshot {
	return domain.TickerSnapshot{
		Symbol:             symbol,
		LastPrice:          0.05,
		PriceChangePercent: 12,
		QuoteVolume:        400_000,
		TradeCount:         4_000,
	}
}

func TestDetectNewListingsEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.TickerSnapshot)
		kept   bool
	}{
		{"inside the envelope", func(t *domain.TickerSnapshot) {}, true},
		{"popular token excluded", func(t *domain.TickerSnapshot) { t.Symbol = "SOLUSDT" }, false},
		{"wrong quote asset", func(t *domain.TickerSnapshot) { t.Symbol = "NEWBTC" }, false},
		{"volume too low", func(t *domain.TickerSnapshot) { t.QuoteVolume = 50_000 }, false},
		{"volume too high", func(t *domain.TickerSnapshot) { t.QuoteVolume = 10_000_000 }, false},
		{"too few trades", func(t *domain.TickerSnapshot) { t.TradeCount = 500 }, false},
		{"too many trades", func(t *domain.TickerSnapshot) { t.TradeCount = 100_000 }, false},
		{"crashed too hard", func(t *domain.TickerSnapshot) { t.PriceChangePercent = -50 }, false},
		{"pumped too hard", func(t *domain.TickerSnapshot) { t.PriceChangePercent = 200 }, false},
		{"zero price", func(t *domain.TickerSnapshot) { t.LastPrice = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticker := plausibleListing("NEWUSDT")
			tt.mutate(&ticker)

			got := DetectNewListings([]domain.TickerSnapshot{ticker})
			if tt.kept {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestNewListingScore(t *testing.T) {
	t.Run("formula components", func(t *testing.T) {
		ticker := domain.TickerSnapshot{
			Symbol:             "NEWUSDT",
			LastPrice:          1,
			TradeCount:         1_000,   // 20
			QuoteVolume:        100_000, // 15
			PriceChangePercent: 5,       // 10, no pump bonus
		}
		assert.InDelta(t, 45, NewListingScore(ticker), 1e-9)
	})

	t.Run("pump bonus above 10 percent", func(t *testing.T) {
		ticker := domain.TickerSnapshot{
			TradeCount:         1_000,
			QuoteVolume:        100_000,
			PriceChangePercent: 15, // 30 + 20 bonus
		}
		assert.InDelta(t, 85, NewListingScore(ticker), 1e-9)
	})

	t.Run("negative change adds nothing", func(t *testing.T) {
		ticker := domain.TickerSnapshot{
			TradeCount:         1_000,
			QuoteVolume:        100_000,
			PriceChangePercent: -20,
		}
		assert.InDelta(t, 35, NewListingScore(ticker), 1e-9)
	})

	t.Run("capped at 100", func(t *testing.T) {
		ticker := domain.TickerSnapshot{
			TradeCount:         50_000,
			QuoteVolume:        9_000_000,
			PriceChangePercent: 150,
		}
		assert.Equal(t, 100.0, NewListingScore(ticker))
	})
}

func TestDetectNewListingsSortsByScore(t *testing.T) {
	weak := plausibleListing("WEAKUSDT")
	weak.TradeCount = 600
	weak.QuoteVolume = 60_000
	weak.PriceChangePercent = 1

	strong := plausibleListing("STRONGUSDT")
	strong.TradeCount = 9_000
	strong.QuoteVolume = 900_000
	strong.PriceChangePercent = 40

	got := DetectNewListings([]domain.TickerSnapshot{weak, strong})
	require.Len(t, got, 2)
	assert.Equal(t, "STRONGUSDT", got[0].Symbol)
	assert.Equal(t, "WEAKUSDT", got[1].Symbol)
}
