package indicators

// DefaultRSIPeriod is the standard lookback for the Relative Strength Index.
const DefaultRSIPeriod = 14

// neutralRSI is returned when the series is too short to say anything.
const neutralRSI = 50

// RSI computes the Relative Strength Index over the trailing `period` price
// changes, Wilder-style simple average of gains vs losses. A series shorter
// than period+1 points yields the neutral 50. A window with zero losses
// yields 100. The result is clamped to [0,100] and rounded to 2 decimals.
func RSI(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return neutralRSI
	}

	window := prices[len(prices)-period-1:]

	gains := 0.0
	losses := 0.0
	for i := 1; i < len(window); i++ {
		change := window[i] - window[i-1]
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	rsi := 100 - (100 / (1 + rs))

	if rsi < 0 {
		rsi = 0
	}
	if rsi > 100 {
		rsi = 100
	}
	return round2(rsi)
}
