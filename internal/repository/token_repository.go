package repository

import (
	"sync"
	"time"
)

// Device is one registered push-notification target.
type Device struct {
	Token        string
	Platform     string // "android" or "ios"
	RegisteredAt time.Time
}

// TokenRepository keeps FCM device tokens in memory. Re-registering a token
// refreshes its timestamp.
type TokenRepository struct {
	devices map[string]Device
	mu      sync.RWMutex
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{devices: make(map[string]Device)}
}

func (r *TokenRepository) Register(token, platform string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[token] = Device{Token: token, Platform: platform, RegisteredAt: time.Now()}
}

func (r *TokenRepository) Unregister(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.devices, token)
}

// Tokens returns all registered token strings.
func (r *TokenRepository) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0, len(r.devices))
	for token := range r.devices {
		tokens = append(tokens, token)
	}
	return tokens
}

func (r *TokenRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}
