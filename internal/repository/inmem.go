package repository

import (
	"sync"

	"explosion-backend/internal/domain"
)

// InMemoryCandidateRepository holds the latest ranked analysis produced by
// the background refresh loop, for the websocket feed to broadcast.
type InMemoryCandidateRepository struct {
	result domain.ViewResult
	mu     sync.RWMutex
}

func NewInMemoryCandidateRepository() *InMemoryCandidateRepository {
	return &InMemoryCandidateRepository{}
}

// SaveResult replaces the stored result; each refresh cycle rewrites the
// whole ranked set at once.
func (r *InMemoryCandidateRepository) SaveResult(result domain.ViewResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = result
}

// LatestResult returns the stored result with a copied data slice so callers
// cannot race the next save.
func (r *InMemoryCandidateRepository) LatestResult() domain.ViewResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.result
	out.Data = make([]domain.CandidateResult, len(r.result.Data))
	copy(out.Data, r.result.Data)
	return out
}
