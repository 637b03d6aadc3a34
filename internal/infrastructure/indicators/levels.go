package indicators

// levelsWindow is the trailing sample count used for support/resistance.
const levelsWindow = 20

// SupportResistance derives support and resistance bounds from the trailing
// 20-sample window, clamped to a band around the live price so the levels
// never drift unrealistically far from it: support stays within -5% of
// current, resistance within +15%.
func SupportResistance(prices []float64, currentPrice float64) (support, resistance float64) {
	window := prices
	if len(window) > levelsWindow {
		window = window[len(window)-levelsWindow:]
	}
	if len(window) == 0 {
		return currentPrice, currentPrice
	}

	low, high := window[0], window[0]
	for _, p := range window[1:] {
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}

	support = low * 0.98
	if floor := currentPrice * 0.95; floor > support {
		support = floor
	}

	resistance = high * 1.02
	if ceil := currentPrice * 1.15; ceil < resistance {
		resistance = ceil
	}
	return support, resistance
}
