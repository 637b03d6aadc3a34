package indicators

import "explosion-backend/internal/domain"

// Classify buckets the recent direction of the series from the last-vs-first
// ratio over the trailing 5 (short) and trailing 10 (mid) windows. The first
// matching rule wins.
func Classify(prices []float64) domain.Trend {
	shortTrend := windowRatio(prices, 5)
	midTrend := windowRatio(prices, 10)

	switch {
	case shortTrend > 1.10:
		return domain.TrendVeryBullish
	case shortTrend > 1.05 && midTrend > 1.02:
		return domain.TrendBullish
	case shortTrend < 0.90:
		return domain.TrendVeryBearish
	case shortTrend < 0.95 && midTrend < 0.98:
		return domain.TrendBearish
	default:
		return domain.TrendNeutral
	}
}

// windowRatio returns last/first over the trailing n points, or 1 when the
// window cannot be formed.
func windowRatio(prices []float64, n int) float64 {
	if len(prices) < n || n < 2 {
		return 1
	}
	window := prices[len(prices)-n:]
	if window[0] == 0 {
		return 1
	}
	return window[len(window)-1] / window[0]
}
