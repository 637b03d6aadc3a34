package http

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"explosion-backend/internal/domain"
)

const apiVersion = "1.0.0"

var endpointIndex = map[string]string{
	"/api/explosion-candidates": "🔥 Candidatos de explosión",
	"/api/top-gainers":          "📈 Top ganadores seguros",
	"/api/new-listings":         "🆕 Nuevos listados",
	"/api/smart-analysis":       "🧠 Análisis completo",
	"/api/health":               "⚡ Estado del sistema",
}

// HealthHandler reports upstream reachability, round-trip latency and
// process stats.
type HealthHandler struct {
	provider  domain.MarketDataProvider
	startedAt time.Time
}

func NewHealthHandler(provider domain.MarketDataProvider) *HealthHandler {
	return &HealthHandler{provider: provider, startedAt: time.Now()}
}

type memoryStats struct {
	AllocMB      float64 `json:"allocMB"`
	TotalAllocMB float64 `json:"totalAllocMB"`
	SysMB        float64 `json:"sysMB"`
	NumGC        uint32  `json:"numGC"`
}

type healthResponse struct {
	Status            string            `json:"status"`
	Timestamp         string            `json:"timestamp"`
	UptimeSeconds     float64           `json:"uptime"`
	Memory            memoryStats       `json:"memory"`
	ResponseTime      string            `json:"responseTime"`
	BinanceConnection string            `json:"binanceConnection"`
	APIVersion        string            `json:"apiVersion"`
	Endpoints         map[string]string `json:"endpoints"`
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if _, err := h.provider.ServerTime(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Error en el sistema", err)
		return
	}
	latency := time.Since(start)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		Memory: memoryStats{
			AllocMB:      float64(m.Alloc) / 1024 / 1024,
			TotalAllocMB: float64(m.TotalAlloc) / 1024 / 1024,
			SysMB:        float64(m.Sys) / 1024 / 1024,
			NumGC:        m.NumGC,
		},
		ResponseTime:      fmt.Sprintf("%dms", latency.Milliseconds()),
		BinanceConnection: "OK",
		APIVersion:        apiVersion,
		Endpoints:         endpointIndex,
	})
}

// HandleIndex serves the root endpoint listing.
func (h *HealthHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "🚀 Crypto Explosion API - Detectando oportunidades",
		"version":   apiVersion,
		"endpoints": endpointIndex,
	})
}
