package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"revshop-web/config"
	"revshop-web/internal/delivery/http/middleware"
	v1 "revshop-web/internal/delivery/http/v1"
	"revshop-web/internal/infrastructure/cache"
	"revshop-web/internal/upstream"
	"revshop-web/internal/usecase"
	"revshop-web/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Upstream marketplace API client
	gateway := upstream.NewClient(cfg.APIBaseURL, cfg.UpstreamTimeout)
	log.Info().Str("api_base_url", cfg.APIBaseURL).Msg("Marketplace API client initialized")

	// Session composer store (in-memory)
	composerStore := cache.NewMemoryCache(cfg.ComposerTTL, cfg.ComposerCleanup)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Order lifecycle view module
	orderViewUC := usecase.NewOrderViewUsecase(gateway)
	actionUC := usecase.NewOrderActionUsecase(gateway, orderViewUC, composerStore, cfg.ComposerTTL)
	reviewUC := usecase.NewReviewUsecase(gateway, orderViewUC, composerStore, cfg.ComposerTTL)

	orderViewHandler := v1.NewOrderViewHandler(orderViewUC, actionUC)
	reviewHandler := v1.NewReviewHandler(reviewUC)
	sessionHandler := v1.NewSessionHandler()

	// All app routes require a decoded buyer session
	buyer := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.BuyerOnly(h))
	}

	// Orders
	mux.Handle("GET /app/v1/orders/view", buyer(orderViewHandler.GetOrders))
	mux.Handle("GET /app/v1/orders/{id}/payment", buyer(orderViewHandler.CheckPayment))
	mux.Handle("POST /app/v1/orders/{id}/confirm-delivery", buyer(orderViewHandler.ConfirmDelivery))
	mux.Handle("POST /app/v1/orders/{id}/composer/{action}", buyer(orderViewHandler.OpenComposer))
	mux.Handle("POST /app/v1/orders/{id}/actions/{action}", buyer(orderViewHandler.SubmitAction))

	// Reviews
	mux.Handle("POST /app/v1/reviews/composer", buyer(reviewHandler.OpenComposer))
	mux.Handle("POST /app/v1/reviews/submit", buyer(reviewHandler.SubmitReview))

	// Session
	mux.Handle("GET /app/v1/session", middleware.AuthMiddleware(http.HandlerFunc(sessionHandler.Me)))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /app/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitPerSecond),
		cfg.RateLimitBurst,
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Stop rate limiter cleanup goroutine
	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
