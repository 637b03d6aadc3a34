package domain

import (
	"context"
	"time"
)

// MarketDataProvider is the upstream market-data contract. Both data calls
// are fallible; the pipeline decides how failures propagate.
type MarketDataProvider interface {
	Ticker24h(ctx context.Context) ([]TickerSnapshot, error)
	Klines(ctx context.Context, symbol, interval string, limit int) ([]Candle, error)
	ServerTime(ctx context.Context) (time.Time, error)
}

// CandidateRepository stores the latest ranked analysis for push consumers.
type CandidateRepository interface {
	SaveResult(result ViewResult)
	LatestResult() ViewResult
}
