package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/cheechan-golf/backend/internal/api/http"
	"github.com/cheechan-golf/backend/internal/cache"
	"github.com/cheechan-golf/backend/internal/config"
	"github.com/cheechan-golf/backend/internal/db"
	"github.com/cheechan-golf/backend/internal/rate"
	"github.com/cheechan-golf/backend/internal/repository"
	"github.com/cheechan-golf/backend/internal/server"
	"github.com/cheechan-golf/backend/internal/service"
	"github.com/cheechan-golf/backend/internal/sms"
	"github.com/cheechan-golf/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Info("starting membership api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	// OTP request throttle, active only when redis is configured
	var otpLimiter service.RateLimiter
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			appLogger.Error("redis connect problem", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				appLogger.Error("error when closing redis", zap.Error(err))
			}
		}()
		otpLimiter = rate.NewLimiter(redisClient, cfg.OTPRate)
		appLogger.Info("redis connection done, otp throttle enabled")
	}

	smsClient := sms.NewClient(cfg.SMS)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Repos:       repos,
		OTPProvider: smsClient,
		RateLimiter: otpLimiter,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
