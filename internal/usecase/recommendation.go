package usecase

import "explosion-backend/internal/domain"

// overboughtRSI triggers the post-tier caution override.
const overboughtRSI = 80

type recommendationTier struct {
	minScore   int
	action     domain.Action
	confidence domain.Confidence
	targetMult float64
	stopMult   float64
	timeFrame  string
}

// recommendationTiers is evaluated top-down; the first tier whose minScore
// the score reaches wins. The last row is the catch-all.
var recommendationTiers = []recommendationTier{
	{85, domain.ActionImmediateBuy, domain.ConfidenceExtrema, 1.35, 0.88, "1-4 horas"},
	{75, domain.ActionStrongBuy, domain.ConfidenceMuyAlta, 1.25, 0.90, "2-6 horas"},
	{65, domain.ActionModerateBuy, domain.ConfidenceAlta, 1.18, 0.92, "4-12 horas"},
	{50, domain.ActionWatch, domain.ConfidenceMedia, 1.12, 0.94, "6-24 horas"},
	{35, domain.ActionMonitor, domain.ConfidenceBaja, 1.08, 0.96, "12-48 horas"},
	{0, domain.ActionAvoid, domain.ConfidenceMuyBaja, 1.05, 0.97, "N/A"},
}

// GenerateRecommendation maps a score to its tier and applies the overbought
// override: above RSI 80 a buy action becomes the caution variant and an
// EXTREMA confidence is downgraded to ALTA. BuyPrice is the current price.
func GenerateRecommendation(score int, rsi, currentPrice float64) domain.Recommendation {
	tier := recommendationTiers[len(recommendationTiers)-1]
	for _, t := range recommendationTiers {
		if score >= t.minScore {
			tier = t
			break
		}
	}

	rec := domain.Recommendation{
		Action:     tier.action,
		Confidence: tier.confidence,
		BuyPrice:   currentPrice,
		SellTarget: currentPrice * tier.targetMult,
		StopLoss:   currentPrice * tier.stopMult,
		TimeFrame:  tier.timeFrame,
	}

	if rsi > overboughtRSI {
		if rec.Action.IsBuy() {
			rec.Action = domain.ActionOverboughtCaution
		}
		if rec.Confidence == domain.ConfidenceExtrema {
			rec.Confidence = domain.ConfidenceAlta
		}
	}
	return rec
}
