package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"explosion-backend/internal/config"
	httpdelivery "explosion-backend/internal/delivery/http"
	wsdelivery "explosion-backend/internal/delivery/websocket"
	"explosion-backend/internal/domain"
	"explosion-backend/internal/infrastructure/binance"
	"explosion-backend/internal/infrastructure/fcm"
	"explosion-backend/internal/repository"
	"explosion-backend/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	configPath := flag.String("config", "config.yaml", "path to yaml config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Infrastructure
	client := binance.NewClient(cfg.Binance.BaseURL)
	fcmClient, err := fcm.NewClient(logger)
	if err != nil {
		logger.Warn("FCM initialization failed, push alerts disabled", zap.Error(err))
		fcmClient = nil
	}

	// Caches and repositories
	resultCache := repository.NewTTLCache[domain.ViewResult](cfg.Cache.ResultTTL)
	seriesCache := repository.NewTTLCache[domain.PriceSeries](cfg.Cache.SeriesTTL)
	candidateRepo := repository.NewInMemoryCandidateRepository()
	tokenRepo := repository.NewTokenRepository()

	// Usecases
	notifier := usecase.NewNotifier(fcmClient, tokenRepo, logger, cfg.Alerts.MinScore, cfg.Alerts.Cooldown)
	analyzer := usecase.NewAnalyzer(client, resultCache, seriesCache, logger,
		usecase.WithKlines(cfg.Binance.KlinesInterval, cfg.Binance.KlinesLimit),
		usecase.WithRefreshInterval(cfg.Screener.RefreshInterval),
		usecase.WithLiveFeed(candidateRepo, notifier),
	)

	go analyzer.Run(ctx)

	// Delivery
	candidatesHandler := httpdelivery.NewCandidatesHandler(analyzer, logger)
	healthHandler := httpdelivery.NewHealthHandler(client)
	tokenHandler := httpdelivery.NewTokenHandler(tokenRepo)
	wsHandler := wsdelivery.NewHandler(candidateRepo, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", healthHandler.HandleIndex)
	r.Get("/api/explosion-candidates", candidatesHandler.HandleExplosionCandidates)
	r.Get("/api/top-gainers", candidatesHandler.HandleTopGainers)
	r.Get("/api/new-listings", candidatesHandler.HandleNewListings)
	r.Get("/api/smart-analysis", candidatesHandler.HandleSmartAnalysis)
	r.Get("/api/health", healthHandler.HandleHealth)
	r.Post("/api/tokens/register", tokenHandler.HandleRegister)
	r.Post("/api/tokens/unregister", tokenHandler.HandleUnregister)
	r.Get("/ws", wsHandler.Handle)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("server listening", zap.Int("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
