package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"explosion-backend/internal/domain"
)

const broadcastInterval = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // public read-only feed
	},
}

// Handler streams the latest ranked analysis to websocket clients.
type Handler struct {
	repo   domain.CandidateRepository
	logger *zap.Logger
}

func NewHandler(repo domain.CandidateRepository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Handle upgrades the connection, pushes the current snapshot immediately
// and then the latest one every broadcast interval until the client drops.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Info("websocket client connected", zap.String("remote", r.RemoteAddr))

	if err := conn.WriteJSON(h.repo.LatestResult()); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
		return
	}

	ticker := time.NewTicker(broadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(h.repo.LatestResult()); err != nil {
				h.logger.Info("websocket client disconnected", zap.Error(err))
				return
			}
		}
	}
}
