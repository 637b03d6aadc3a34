package http

import (
	"encoding/json"
	"net/http"

	"explosion-backend/internal/repository"
)

// TokenHandler registers FCM device tokens for push alerts.
type TokenHandler struct {
	tokenRepo *repository.TokenRepository
}

func NewTokenHandler(tokenRepo *repository.TokenRepository) *TokenHandler {
	return &TokenHandler{tokenRepo: tokenRepo}
}

type tokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type tokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (h *TokenHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if req.Platform == "" {
		req.Platform = "android"
	}

	h.tokenRepo.Register(req.Token, req.Platform)
	writeJSON(w, http.StatusOK, tokenResponse{
		Success: true,
		Message: "Token registered",
		Count:   h.tokenRepo.Count(),
	})
}

func (h *TokenHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	h.tokenRepo.Unregister(req.Token)
	writeJSON(w, http.StatusOK, tokenResponse{
		Success: true,
		Message: "Token unregistered",
		Count:   h.tokenRepo.Count(),
	})
}

func (h *TokenHandler) decode(w http.ResponseWriter, r *http.Request) (tokenRequest, bool) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return req, false
	}
	return req, true
}
