package usecase

import (
	"sort"
	"strings"

	"explosion-backend/internal/domain"
)

// quoteSuffix restricts screening to USDT-quoted pairs.
const quoteSuffix = "USDT"

// popularTokens are established heavily-traded pairs, excluded from the
// new-listing heuristic because they cannot be recent listings.
var popularTokens = map[string]bool{
	"BTCUSDT": true,
	"ETHUSDT": true,
	"BNBUSDT": true,
	"ADAUSDT": true,
	"XRPUSDT": true,
	"SOLUSDT": true,
	"DOTUSDT": true,
}

// isLikelyNewListing is a volume/trade/price envelope meant to exclude both
// dead pairs and already-established ones.
func isLikelyNewListing(t domain.TickerSnapshot) bool {
	return strings.HasSuffix(t.Symbol, quoteSuffix) &&
		!popularTokens[t.Symbol] &&
		t.QuoteVolume > 50_000 && t.QuoteVolume < 10_000_000 &&
		t.TradeCount > 500 && t.TradeCount < 100_000 &&
		t.PriceChangePercent > -50 && t.PriceChangePercent < 200 &&
		t.LastPrice > 0
}

// NewListingScore rates a surviving candidate by trade activity, quote
// volume and positive price action, capped at 100.
func NewListingScore(t domain.TickerSnapshot) float64 {
	score := float64(t.TradeCount)/1000*20 + t.QuoteVolume/100_000*15
	if t.PriceChangePercent > 0 {
		score += t.PriceChangePercent * 2
	}
	if t.PriceChangePercent > 10 {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}

// DetectNewListings filters the snapshot set through the new-listing
// envelope and returns the survivors sorted by descending listing score.
func DetectNewListings(tickers []domain.TickerSnapshot) []domain.TickerSnapshot {
	var candidates []domain.TickerSnapshot
	for _, t := range tickers {
		if isLikelyNewListing(t) {
			candidates = append(candidates, t)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return NewListingScore(candidates[i]) > NewListingScore(candidates[j])
	})
	return candidates
}
