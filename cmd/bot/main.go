package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/cs230426/Car-Rental/internal/bookings"
	"github.com/cs230426/Car-Rental/internal/bot"
	"github.com/cs230426/Car-Rental/internal/cars"
	appconfig "github.com/cs230426/Car-Rental/internal/config"
	"github.com/cs230426/Car-Rental/internal/customers"
	"github.com/cs230426/Car-Rental/internal/dealers"
	"github.com/cs230426/Car-Rental/internal/observability/metrics"
	"github.com/cs230426/Car-Rental/internal/ops"
	"github.com/cs230426/Car-Rental/internal/session"
	"github.com/cs230426/Car-Rental/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting car rental bot",
		"env", cfg.Env,
		"ops_port", cfg.OpsPort,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Error("failed to authorize bot", "error", err)
		os.Exit(1)
	}
	logger.Info("authorized on telegram", "username", api.Self.UserName)

	registry := prometheus.NewRegistry()
	botMetrics := metrics.NewBotMetrics(registry)

	dispatcher := bot.New(bot.Config{
		API:          api,
		Customers:    customers.NewStore(pool),
		Dealers:      dealers.NewStore(pool),
		Cars:         cars.NewStore(pool),
		Bookings:     bookings.NewStore(pool),
		Sessions:     session.NewStore(redisClient, cfg.SessionTTL),
		Metrics:      botMetrics,
		Logger:       logger.With("component", "bot"),
		AdminGroupID: cfg.AdminGroupID,
		PageSize:     cfg.CarsPageSize,
	})

	opsRouter := ops.New(&ops.Config{
		Logger:         logger.With("component", "ops"),
		DB:             pool,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	srv := &http.Server{
		Addr:         ":" + cfg.OpsPort,
		Handler:      opsRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("ops server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ops server error", "error", err)
			os.Exit(1)
		}
	}()

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = cfg.PollTimeout
	updates := api.GetUpdatesChan(updateCfg)

	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	// Blocks until the update channel closes on shutdown.
	dispatcher.Run(ctx, updates)

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server forced to shutdown", "error", err)
	}
	logger.Info("stopped")
}
