package indicators

import "math"

// minVolatilityPoints is the minimum series length for a meaningful stddev.
const minVolatilityPoints = 10

// Volatility is the standard deviation of period-over-period simple returns,
// expressed as a percentage and rounded to 2 decimals. Fewer than 10 points
// yields 0.
func Volatility(prices []float64) float64 {
	if len(prices) < minVolatilityPoints {
		return 0
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}
	if len(returns) == 0 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	return round2(math.Sqrt(variance) * 100)
}
