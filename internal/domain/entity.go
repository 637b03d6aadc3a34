package domain

// TickerSnapshot is one symbol's 24h market statistics, parsed from the
// provider's stringly payload. Immutable once built.
type TickerSnapshot struct {
	Symbol             string  `json:"symbol"`
	LastPrice          float64 `json:"lastPrice"`
	PriceChangePercent float64 `json:"priceChangePercent"`
	Volume             float64 `json:"volume"`      // base asset
	QuoteVolume        float64 `json:"quoteVolume"` // quote asset (USDT)
	TradeCount         int64   `json:"tradeCount"`
}

// Candle is a single OHLCV kline, time-ascending within a series.
type Candle struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the close prices (and candle volumes, used only for the
// volume-spike multiplier) for one symbol/interval/limit triple. Owned by the
// cache that produced it; consumers must not mutate it.
type PriceSeries struct {
	Closes  []float64
	Volumes []float64
}

// Len returns the number of data points in the series.
func (s PriceSeries) Len() int { return len(s.Closes) }

// TechnicalIndicators is the per-symbol indicator bundle, computed fresh per
// request and never cached on its own.
type TechnicalIndicators struct {
	RSI         float64 `json:"rsi"`
	Volatility  float64 `json:"volatility"`
	MACD        float64 `json:"macd"`
	Trend       Trend   `json:"trend"`
	Support     float64 `json:"support"`
	Resistance  float64 `json:"resistance"`
	VolumeSpike float64 `json:"volumeSpike"`
}

// Recommendation maps a score (and RSI) to an actionable tuple with price
// targets. BuyPrice is always the current price.
type Recommendation struct {
	Action     Action     `json:"action"`
	Confidence Confidence `json:"confidence"`
	BuyPrice   float64    `json:"buyPrice"`
	SellTarget float64    `json:"sellTarget"`
	StopLoss   float64    `json:"stopLoss"`
	TimeFrame  string     `json:"timeFrame"`
}

// CandidateResult is the externally visible unit: one analyzed symbol.
// Immutable once built.
type CandidateResult struct {
	Symbol             string              `json:"symbol"`
	Price              float64             `json:"price"`
	PriceChangePercent float64             `json:"priceChangePercent"`
	ExplosionScore     int                 `json:"explosionScore"`
	NewListingScore    float64             `json:"newListingScore,omitempty"`
	Technicals         TechnicalIndicators `json:"technicals"`
	Recommendation     Recommendation      `json:"recommendation"`
}

// MarketSummary buckets a broad analysis run by explosion-score tier.
type MarketSummary struct {
	TotalAnalyzed   int `json:"totalAnalyzed"`
	HighPotential   int `json:"highPotential"`   // score > 70
	MediumPotential int `json:"mediumPotential"` // 40 < score <= 70
	LowPotential    int `json:"lowPotential"`    // score <= 40
}

// ViewResult is the envelope served per ranked view and the unit held by the
// result cache.
type ViewResult struct {
	Status        string            `json:"status"`
	Timestamp     string            `json:"timestamp"`
	Data          []CandidateResult `json:"data"`
	MarketSummary *MarketSummary    `json:"marketSummary,omitempty"`
	Message       string            `json:"message,omitempty"`
	Error         string            `json:"error,omitempty"`
}
