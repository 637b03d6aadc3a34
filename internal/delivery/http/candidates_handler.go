package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"explosion-backend/internal/domain"
)

// analyzer is the view surface the handler needs from the pipeline.
type analyzer interface {
	ExplosionCandidates(ctx context.Context) (domain.ViewResult, error)
	TopGainers(ctx context.Context) (domain.ViewResult, error)
	NewListings(ctx context.Context) (domain.ViewResult, error)
	SmartAnalysis(ctx context.Context) (domain.ViewResult, error)
}

// CandidatesHandler serves the four ranked views.
type CandidatesHandler struct {
	analyzer analyzer
	logger   *zap.Logger
}

func NewCandidatesHandler(analyzer analyzer, logger *zap.Logger) *CandidatesHandler {
	return &CandidatesHandler{analyzer: analyzer, logger: logger}
}

func (h *CandidatesHandler) HandleExplosionCandidates(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "explosion-candidates", "Error obteniendo candidatos de explosión", h.analyzer.ExplosionCandidates)
}

func (h *CandidatesHandler) HandleTopGainers(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "top-gainers", "Error obteniendo top ganadores", h.analyzer.TopGainers)
}

func (h *CandidatesHandler) HandleNewListings(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "new-listings", "Error obteniendo nuevos listados", h.analyzer.NewListings)
}

func (h *CandidatesHandler) HandleSmartAnalysis(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "smart-analysis", "Error en análisis completo", h.analyzer.SmartAnalysis)
}

func (h *CandidatesHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	view, failureMessage string,
	fetch func(ctx context.Context) (domain.ViewResult, error),
) {
	result, err := fetch(r.Context())
	if err != nil {
		h.logger.Error("view request failed", zap.String("view", view), zap.Error(err))
		writeError(w, http.StatusInternalServerError, failureMessage, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
