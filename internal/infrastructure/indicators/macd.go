package indicators

// minMACDPoints is the slow-EMA window; below it MACD is not computable.
const minMACDPoints = 26

// MACDResult holds the MACD proxy output. The signal line is not smoothed
// here, so the histogram equals the MACD line and Signal stays 0.
type MACDResult struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes EMA(12) - EMA(26) over the series as both the MACD line and
// the histogram. Fewer than 26 points yields an all-zero result.
func MACD(prices []float64) MACDResult {
	if len(prices) < minMACDPoints {
		return MACDResult{}
	}

	line := EMA(prices, 12) - EMA(prices, 26)
	return MACDResult{
		MACD:      line,
		Signal:    0,
		Histogram: line,
	}
}
