package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"explosion-backend/internal/domain"
	"explosion-backend/internal/infrastructure/fcm"
	"explosion-backend/internal/repository"
)

const (
	// DefaultAlertMinScore is the immediate-buy tier threshold.
	DefaultAlertMinScore = 85
	// DefaultAlertCooldown spaces repeat alerts for the same symbol.
	DefaultAlertCooldown = 30 * time.Minute
)

// Notifier pushes FCM alerts for candidates that reach the alert threshold,
// with a per-symbol cooldown so a symbol that stays hot does not spam every
// refresh cycle.
type Notifier struct {
	fcmClient *fcm.Client
	tokenRepo *repository.TokenRepository
	logger    *zap.Logger

	minScore int
	cooldown time.Duration

	mu       sync.Mutex
	notified map[string]time.Time
}

func NewNotifier(fcmClient *fcm.Client, tokenRepo *repository.TokenRepository, logger *zap.Logger, minScore int, cooldown time.Duration) *Notifier {
	if minScore <= 0 {
		minScore = DefaultAlertMinScore
	}
	if cooldown <= 0 {
		cooldown = DefaultAlertCooldown
	}
	return &Notifier{
		fcmClient: fcmClient,
		tokenRepo: tokenRepo,
		logger:    logger,
		minScore:  minScore,
		cooldown:  cooldown,
		notified:  make(map[string]time.Time),
	}
}

// NotifyTopCandidates alerts registered devices about every candidate at or
// above the threshold that is not in cooldown.
func (n *Notifier) NotifyTopCandidates(results []domain.CandidateResult) {
	if n.fcmClient == nil || !n.fcmClient.IsEnabled() {
		return
	}

	tokens := n.tokenRepo.Tokens()
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	for _, r := range results {
		if r.ExplosionScore < n.minScore {
			continue
		}

		n.mu.Lock()
		last, seen := n.notified[r.Symbol]
		n.mu.Unlock()
		if seen && now.Sub(last) < n.cooldown {
			continue
		}

		display := strings.TrimSuffix(r.Symbol, quoteSuffix)
		title := fmt.Sprintf("🚀 %s con potencial de explosión", display)
		body := fmt.Sprintf("Score: %d | Precio: $%.6f | Cambio: %.2f%%",
			r.ExplosionScore, r.Price, r.PriceChangePercent)
		data := map[string]string{
			"symbol": r.Symbol,
			"score":  fmt.Sprintf("%d", r.ExplosionScore),
			"price":  fmt.Sprintf("%.8f", r.Price),
			"action": r.Recommendation.Action.String(),
		}

		if err := n.fcmClient.SendMulticast(tokens, title, body, data); err != nil {
			n.logger.Error("alert send failed", zap.String("symbol", r.Symbol), zap.Error(err))
			continue
		}

		n.logger.Info("alert sent",
			zap.String("symbol", r.Symbol),
			zap.Int("score", r.ExplosionScore),
			zap.Int("devices", len(tokens)))

		n.mu.Lock()
		n.notified[r.Symbol] = now
		n.mu.Unlock()
	}

	// Drop entries old enough that the cooldown no longer applies.
	n.mu.Lock()
	for symbol, ts := range n.notified {
		if now.Sub(ts) > n.cooldown*2 {
			delete(n.notified, symbol)
		}
	}
	n.mu.Unlock()
}
