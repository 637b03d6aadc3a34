package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"explosion-backend/internal/domain"
	"explosion-backend/internal/infrastructure/indicators"
	"explosion-backend/internal/repository"
)

const (
	// Klines request shape shared by every view. 50 points cover the
	// 26-point MACD window and the 20-point analysis window with room for
	// short provider responses.
	defaultKlinesInterval = "1h"
	defaultKlinesLimit    = 50

	defaultRefreshInterval = time.Minute

	statusSuccess = "success"
	statusError   = "error"
)

// viewSpec describes one ranked view: which snapshots survive the filter,
// how many get the expensive per-symbol enrichment, how the results rank and
// how many are returned.
type viewSpec struct {
	name         string
	filter       func(domain.TickerSnapshot) bool
	newListings  bool // use the detector instead of filter
	enrichCap    int
	limit        int
	rankByChange bool // rank by raw price change instead of score
	withSummary  bool
}

// excludedMajors keeps the dominant pairs out of the explosion view; their
// size makes an explosive move structurally unlikely.
var excludedMajors = map[string]bool{
	"BTCUSDT": true,
	"ETHUSDT": true,
	"BNBUSDT": true,
	"ADAUSDT": true,
	"XRPUSDT": true,
}

var (
	explosionView = viewSpec{
		name: "explosion-candidates",
		filter: func(t domain.TickerSnapshot) bool {
			return strings.HasSuffix(t.Symbol, quoteSuffix) &&
				!excludedMajors[t.Symbol] &&
				t.PriceChangePercent > 8 &&
				t.QuoteVolume > 100_000
		},
		enrichCap: 5,
		limit:     5,
	}

	topGainersView = viewSpec{
		name: "top-gainers",
		filter: func(t domain.TickerSnapshot) bool {
			return strings.HasSuffix(t.Symbol, quoteSuffix) &&
				t.Symbol != "BTCUSDT" && t.Symbol != "ETHUSDT" &&
				t.PriceChangePercent > 3 && t.PriceChangePercent < 15 &&
				t.QuoteVolume > 500_000
		},
		enrichCap:    5,
		limit:        5,
		rankByChange: true,
	}

	newListingsView = viewSpec{
		name:        "new-listings",
		newListings: true,
		enrichCap:   5,
		limit:       5,
	}

	smartAnalysisView = viewSpec{
		name: "smart-analysis",
		filter: func(t domain.TickerSnapshot) bool {
			return strings.HasSuffix(t.Symbol, quoteSuffix) &&
				t.Symbol != "BTCUSDT" && t.Symbol != "ETHUSDT" &&
				t.PriceChangePercent > 2 &&
				t.QuoteVolume > 100_000
		},
		enrichCap:   10,
		limit:       8,
		withSummary: true,
	}
)

// Analyzer orchestrates the candidate pipeline: fetch snapshots, filter,
// enrich per symbol (cached history, indicators, score, recommendation),
// rank and truncate. It owns the two cache tiers and optionally feeds the
// latest-result repository and notifier from a background refresh loop.
type Analyzer struct {
	provider    domain.MarketDataProvider
	resultCache *repository.TTLCache[domain.ViewResult]
	seriesCache *repository.TTLCache[domain.PriceSeries]
	logger      *zap.Logger

	repo     domain.CandidateRepository
	notifier *Notifier

	klinesInterval  string
	klinesLimit     int
	refreshInterval time.Duration
}

// AnalyzerOption tweaks analyzer construction.
type AnalyzerOption func(*Analyzer)

// WithKlines overrides the history request shape.
func WithKlines(interval string, limit int) AnalyzerOption {
	return func(a *Analyzer) {
		a.klinesInterval = interval
		a.klinesLimit = limit
	}
}

// WithRefreshInterval overrides the background refresh cadence.
func WithRefreshInterval(d time.Duration) AnalyzerOption {
	return func(a *Analyzer) { a.refreshInterval = d }
}

// WithLiveFeed attaches the latest-result repository and notifier served by
// the background loop.
func WithLiveFeed(repo domain.CandidateRepository, notifier *Notifier) AnalyzerOption {
	return func(a *Analyzer) {
		a.repo = repo
		a.notifier = notifier
	}
}

func NewAnalyzer(
	provider domain.MarketDataProvider,
	resultCache *repository.TTLCache[domain.ViewResult],
	seriesCache *repository.TTLCache[domain.PriceSeries],
	logger *zap.Logger,
	opts ...AnalyzerOption,
) *Analyzer {
	a := &Analyzer{
		provider:        provider,
		resultCache:     resultCache,
		seriesCache:     seriesCache,
		logger:          logger,
		klinesInterval:  defaultKlinesInterval,
		klinesLimit:     defaultKlinesLimit,
		refreshInterval: defaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ExplosionCandidates returns the top symbols most likely to make an
// explosive move, ranked by explosion score.
func (a *Analyzer) ExplosionCandidates(ctx context.Context) (domain.ViewResult, error) {
	return a.view(ctx, explosionView)
}

// TopGainers returns steadier gainers ranked by 24h price change.
func (a *Analyzer) TopGainers(ctx context.Context) (domain.ViewResult, error) {
	return a.view(ctx, topGainersView)
}

// NewListings returns likely recently-listed symbols, selected by the
// listing heuristic and ranked by explosion score.
func (a *Analyzer) NewListings(ctx context.Context) (domain.ViewResult, error) {
	return a.view(ctx, newListingsView)
}

// SmartAnalysis returns the broad ranked view with the potential-tier
// market summary.
func (a *Analyzer) SmartAnalysis(ctx context.Context) (domain.ViewResult, error) {
	return a.view(ctx, smartAnalysisView)
}

func (a *Analyzer) view(ctx context.Context, spec viewSpec) (domain.ViewResult, error) {
	if cached, ok := a.resultCache.Get(spec.name); ok {
		return cached, nil
	}

	result, err := a.computeView(ctx, spec)
	if err != nil {
		return domain.ViewResult{}, err
	}

	a.resultCache.Set(spec.name, result)
	return result, nil
}

// computeView runs the pipeline end to end, bypassing the result cache. A
// ticker fetch failure is fatal for the view; per-symbol failures are not.
func (a *Analyzer) computeView(ctx context.Context, spec viewSpec) (domain.ViewResult, error) {
	tickers, err := a.provider.Ticker24h(ctx)
	if err != nil {
		return domain.ViewResult{}, err
	}

	var candidates []domain.TickerSnapshot
	if spec.newListings {
		candidates = DetectNewListings(tickers)
	} else {
		for _, t := range tickers {
			if spec.filter(t) {
				candidates = append(candidates, t)
			}
		}
	}

	n := spec.enrichCap
	if len(candidates) < n {
		n = len(candidates)
	}

	results := make([]domain.CandidateResult, 0, n)
	for i := 0; i < n; i++ {
		result := a.enrich(ctx, candidates[i])
		if spec.newListings {
			result.NewListingScore = NewListingScore(candidates[i])
		}
		results = append(results, result)
	}

	// Stable sort keeps provider order for equal keys.
	if spec.rankByChange {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PriceChangePercent > results[j].PriceChangePercent
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ExplosionScore > results[j].ExplosionScore
		})
	}

	var summary *domain.MarketSummary
	if spec.withSummary {
		summary = summarize(results)
	}

	if len(results) > spec.limit {
		results = results[:spec.limit]
	}

	return domain.ViewResult{
		Status:        statusSuccess,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Data:          results,
		MarketSummary: summary,
	}, nil
}

// enrich is the pure per-symbol stage: history, indicators, score,
// recommendation. It shares no state across symbols, so callers may run it
// serially or fan it out and re-sort afterwards.
func (a *Analyzer) enrich(ctx context.Context, t domain.TickerSnapshot) domain.CandidateResult {
	series := a.history(ctx, t.Symbol)
	tech := indicators.Analyze(series, t.LastPrice)
	score := CalculateExplosionScore(t, tech)

	return domain.CandidateResult{
		Symbol:             t.Symbol,
		Price:              t.LastPrice,
		PriceChangePercent: t.PriceChangePercent,
		ExplosionScore:     score,
		Technicals:         tech,
		Recommendation:     GenerateRecommendation(score, tech.RSI, t.LastPrice),
	}
}

// history returns the cached close-price series for the symbol, fetching it
// upstream on a miss. A fetch failure degrades to an empty (uncached) series
// so one bad symbol cannot fail the whole view.
func (a *Analyzer) history(ctx context.Context, symbol string) domain.PriceSeries {
	key := fmt.Sprintf("%s:%s:%d", symbol, a.klinesInterval, a.klinesLimit)
	if series, ok := a.seriesCache.Get(key); ok {
		return series
	}

	candles, err := a.provider.Klines(ctx, symbol, a.klinesInterval, a.klinesLimit)
	if err != nil {
		a.logger.Warn("klines fetch failed, treating series as empty",
			zap.String("symbol", symbol), zap.Error(err))
		return domain.PriceSeries{}
	}

	series := domain.PriceSeries{
		Closes:  make([]float64, 0, len(candles)),
		Volumes: make([]float64, 0, len(candles)),
	}
	for _, c := range candles {
		series.Closes = append(series.Closes, c.Close)
		series.Volumes = append(series.Volumes, c.Volume)
	}

	a.seriesCache.Set(key, series)
	return series
}

func summarize(results []domain.CandidateResult) *domain.MarketSummary {
	summary := &domain.MarketSummary{TotalAnalyzed: len(results)}
	for _, r := range results {
		switch {
		case r.ExplosionScore > 70:
			summary.HighPotential++
		case r.ExplosionScore > 40:
			summary.MediumPotential++
		default:
			summary.LowPotential++
		}
	}
	return summary
}

// Run recomputes the broad analysis on a fixed cadence for push consumers:
// the latest-result repository backing the websocket feed and the FCM
// notifier. It bypasses the result cache but shares the series cache with
// the request path.
func (a *Analyzer) Run(ctx context.Context) {
	ticker := time.NewTicker(a.refreshInterval)
	defer ticker.Stop()

	a.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.refresh(ctx)
		}
	}
}

func (a *Analyzer) refresh(ctx context.Context) {
	start := time.Now()

	result, err := a.computeView(ctx, smartAnalysisView)
	if err != nil {
		a.logger.Error("refresh cycle failed", zap.Error(err))
		return
	}

	if a.repo != nil {
		a.repo.SaveResult(result)
	}
	if a.notifier != nil {
		a.notifier.NotifyTopCandidates(result.Data)
	}

	a.logger.Info("refresh cycle completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("candidates", len(result.Data)))
}
