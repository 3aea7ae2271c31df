package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/notifier"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form backend for the portfolio site.
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	audit := security.InitSecurityLogger(cfg.ServiceName, cfg.Environment)
	defer audit.Sync()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "record_store", cfg.RecordStore, "notifier", cfg.Notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Record Store
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. Setup Rate Limit Backend
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Notification Dispatcher
	dispatcher, err := notifier.New(cfg)
	if err != nil {
		logger.Log.Error("Failed to configure notifier", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(store, dispatcher, validate)
	healthUC := usecase.NewHealthUsecase(store, redis.HealthCheck)

	// 7. Setup Admin Auth (HS256 secret and/or Supabase JWKS)
	var verifier *auth.Verifier
	if cfg.SupabaseJWTSecret != "" || cfg.SupabaseUrl != "" {
		var jwks *auth.Provider
		if cfg.SupabaseUrl != "" {
			jwks = auth.NewProvider(cfg.SupabaseUrl+"/auth/v1/.well-known/jwks.json", nil)
		}
		verifier = auth.NewVerifier(cfg.SupabaseJWTSecret, jwks)
	} else {
		logger.Log.Warn("No JWT secret or Supabase URL configured - admin routes disabled")
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Verifier:  verifier,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
	}
	logger.Log.Info("Server exiting")
}
