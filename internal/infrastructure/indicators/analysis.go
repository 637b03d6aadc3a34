package indicators

import (
	"math"

	"explosion-backend/internal/domain"
)

// minAnalysisPoints is the shortest history the engine will analyze. Below
// it every indicator degrades to its neutral default in one bundle, which
// beats emitting misleading partial signals.
const minAnalysisPoints = 20

// Analyze computes the full indicator bundle for a price series. A series
// shorter than 20 points returns the neutral-default bundle instead of a
// partial computation.
func Analyze(series domain.PriceSeries, currentPrice float64) domain.TechnicalIndicators {
	if series.Len() < minAnalysisPoints {
		return domain.TechnicalIndicators{
			RSI:         neutralRSI,
			Volatility:  0,
			MACD:        0,
			Trend:       domain.TrendNeutral,
			Support:     currentPrice,
			Resistance:  currentPrice,
			VolumeSpike: 1,
		}
	}

	support, resistance := SupportResistance(series.Closes, currentPrice)

	return domain.TechnicalIndicators{
		RSI:         RSI(series.Closes, DefaultRSIPeriod),
		Volatility:  Volatility(series.Closes),
		MACD:        MACD(series.Closes).MACD,
		Trend:       Classify(series.Closes),
		Support:     support,
		Resistance:  resistance,
		VolumeSpike: VolumeSpike(series.Volumes),
	}
}

// VolumeSpike is the latest candle volume relative to the window average,
// clamped to >= 1 and rounded to 1 decimal.
func VolumeSpike(volumes []float64) float64 {
	if len(volumes) == 0 {
		return 1
	}

	sum := 0.0
	for _, v := range volumes {
		sum += v
	}
	avg := sum / float64(len(volumes))
	if avg == 0 {
		return 1
	}

	spike := volumes[len(volumes)-1] / avg
	if spike < 1 {
		return 1
	}
	return math.Round(spike*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
