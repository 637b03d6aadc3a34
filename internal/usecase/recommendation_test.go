package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"explosion-backend/internal/domain"
)

func TestGenerateRecommendationTierBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		action     domain.Action
		confidence domain.Confidence
		timeFrame  string
	}{
		{"top tier at exactly 85", 85, domain.ActionImmediateBuy, domain.ConfidenceExtrema, "1-4 horas"},
		{"one below top tier", 84, domain.ActionStrongBuy, domain.ConfidenceMuyAlta, "2-6 horas"},
		{"strong buy at 75", 75, domain.ActionStrongBuy, domain.ConfidenceMuyAlta, "2-6 horas"},
		{"moderate buy at 65", 65, domain.ActionModerateBuy, domain.ConfidenceAlta, "4-12 horas"},
		{"watch at 50", 50, domain.ActionWatch, domain.ConfidenceMedia, "6-24 horas"},
		{"monitor at 35", 35, domain.ActionMonitor, domain.ConfidenceBaja, "12-48 horas"},
		{"avoid below 35", 34, domain.ActionAvoid, domain.ConfidenceMuyBaja, "N/A"},
		{"avoid at zero", 0, domain.ActionAvoid, domain.ConfidenceMuyBaja, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := GenerateRecommendation(tt.score, 50, 100)
			assert.Equal(t, tt.action, rec.Action)
			assert.Equal(t, tt.confidence, rec.Confidence)
			assert.Equal(t, tt.timeFrame, rec.TimeFrame)
		})
	}
}

func TestGenerateRecommendationPriceTargets(t *testing.T) {
	rec := GenerateRecommendation(90, 50, 2.0)

	assert.Equal(t, 2.0, rec.BuyPrice)
	assert.InDelta(t, 2.70, rec.SellTarget, 1e-9) // +35%
	assert.InDelta(t, 1.76, rec.StopLoss, 1e-9)   // -12%
	assert.Greater(t, rec.SellTarget, rec.BuyPrice)
	assert.Less(t, rec.StopLoss, rec.BuyPrice)
}

func TestGenerateRecommendationOverboughtOverride(t *testing.T) {
	t.Run("buy action becomes caution and EXTREMA downgrades", func(t *testing.T) {
		rec := GenerateRecommendation(90, 85, 100)
		assert.Equal(t, domain.ActionOverboughtCaution, rec.Action)
		assert.Equal(t, domain.ConfidenceAlta, rec.Confidence)
	})

	t.Run("non-extrema confidence is untouched", func(t *testing.T) {
		rec := GenerateRecommendation(75, 85, 100)
		assert.Equal(t, domain.ActionOverboughtCaution, rec.Action)
		assert.Equal(t, domain.ConfidenceMuyAlta, rec.Confidence)
	})

	t.Run("non-buy action is untouched", func(t *testing.T) {
		rec := GenerateRecommendation(40, 85, 100)
		assert.Equal(t, domain.ActionMonitor, rec.Action)
		assert.Equal(t, domain.ConfidenceBaja, rec.Confidence)
	})

	t.Run("rsi at exactly 80 does not trigger", func(t *testing.T) {
		rec := GenerateRecommendation(90, 80, 100)
		assert.Equal(t, domain.ActionImmediateBuy, rec.Action)
		assert.Equal(t, domain.ConfidenceExtrema, rec.Confidence)
	})
}
