package indicators

// EMA computes the Exponential Moving Average of the series, seeded with the
// first price and smoothed with k = 2/(period+1) across the rest, in order.
// Returns the final EMA value; an empty series yields 0.
func EMA(prices []float64, period int) float64 {
	if len(prices) == 0 || period <= 0 {
		return 0
	}

	k := 2.0 / (float64(period) + 1.0)
	ema := prices[0]
	for _, p := range prices[1:] {
		ema = p*k + ema*(1-k)
	}
	return ema
}
