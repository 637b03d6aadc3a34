package usecase

import "explosion-backend/internal/domain"

// maxExplosionScore caps the composite at 100.
const maxExplosionScore = 100

// CalculateExplosionScore combines a ticker snapshot with its indicator
// bundle into the composite explosion-potential score. Each factor is scored
// against its own tier ladder (highest matching tier wins, tiers are not
// cumulative within a factor); the momentum combos add on top. Pure and
// order-independent, capped at 100.
func CalculateExplosionScore(t domain.TickerSnapshot, tech domain.TechnicalIndicators) int {
	score := 0

	// Price change tiers
	pc := t.PriceChangePercent
	switch {
	case pc > 25:
		score += 40
	case pc > 20:
		score += 35
	case pc > 15:
		score += 30
	case pc > 10:
		score += 20
	case pc > 5:
		score += 10
	}

	// Quote volume tiers
	qv := t.QuoteVolume
	switch {
	case qv > 5_000_000:
		score += 25
	case qv > 2_000_000:
		score += 20
	case qv > 1_000_000:
		score += 15
	case qv > 500_000:
		score += 10
	case qv > 100_000:
		score += 5
	}

	// Trade count tiers
	trades := t.TradeCount
	switch {
	case trades > 50_000:
		score += 10
	case trades > 20_000:
		score += 8
	case trades > 10_000:
		score += 6
	case trades > 5_000:
		score += 4
	case trades > 1_000:
		score += 2
	}

	// Volatility tiers
	vol := tech.Volatility
	switch {
	case vol > 20:
		score += 15
	case vol > 15:
		score += 12
	case vol > 10:
		score += 8
	case vol > 5:
		score += 5
	}

	// RSI band: healthy momentum zone beats overbought
	if tech.RSI > 30 && tech.RSI < 70 {
		score += 10
	} else if tech.RSI > 70 {
		score += 5
	}

	// Momentum combos, additive on top of the factor tiers
	if pc > 30 && qv > 1_000_000 {
		score += 15
	}
	if pc > 50 && qv > 2_000_000 {
		score += 20
	}

	if score > maxExplosionScore {
		score = maxExplosionScore
	}
	return score
}
