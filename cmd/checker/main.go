package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/safebrowse-service/internal/adapter/postgres"
	redis_adapter "github.com/user/safebrowse-service/internal/adapter/redis"
	"github.com/user/safebrowse-service/internal/adapter/safebrowsing"
	"github.com/user/safebrowse-service/internal/adapter/telegram"
	"github.com/user/safebrowse-service/internal/repository"
	"github.com/user/safebrowse-service/internal/usecase"
	"github.com/user/safebrowse-service/pkg/config"
	"github.com/user/safebrowse-service/pkg/logger"
	"github.com/user/safebrowse-service/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	// The API key is the only fatal prerequisite. Everything that fails
	// after this point is logged and the process still exits 0.
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Set GSB_API_KEY environment variable and re-run.")
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	// --- Metrics ---
	metrics.Init()

	ctx := context.Background()

	// --- Optional scan-history store ---
	var history repository.ThreatHistoryRepository
	if cfg.PostgresURL != "" {
		dbpool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("Unable to connect to database, history disabled", zap.Error(err))
		} else {
			defer dbpool.Close()
			repo := postgres.NewThreatHistoryRepo(dbpool)
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Error("Unable to ensure history schema, history disabled", zap.Error(err))
			} else {
				history = repo
				log.Info("PostgreSQL connection pool established")
			}
		}
	}

	// --- Optional recently-checked filter ---
	var checked repository.CheckedURLRepository
	var dedupExpiry time.Duration
	if cfg.RedisAddr != "" && cfg.DedupHours > 0 {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Error("Unable to connect to Redis, deduplication disabled", zap.Error(err))
		} else {
			checked = redis_adapter.NewCheckedURLRepo(rdb)
			dedupExpiry = time.Duration(cfg.DedupHours) * time.Hour
			log.Info("Redis connection established")
		}
	}

	// --- Use case ---
	checker := safebrowsing.NewThreatCheckerRepo(cfg.APIKey, log)
	notifier := telegram.NewNotifierRepo(cfg.TelegramBotToken, cfg.TelegramChatID, log)

	scanner := usecase.NewScanner(checker, notifier, history, checked, log, usecase.ScanConfig{
		DomainsFile: cfg.DomainsFile,
		BatchSize:   cfg.BatchSize,
		DedupExpiry: dedupExpiry,
	})

	summary, err := scanner.Run(ctx)
	if err != nil {
		// Failures inside a run are logged where they happen; Run itself
		// only errors on an unreadable input file. The process still
		// exits 0 so the hosting scheduler does not flag the job.
		log.Error("Run aborted", zap.Error(err))
	} else {
		log.Info("Run complete",
			zap.Int("total_checked", summary.TotalChecked),
			zap.Int("batches", summary.Batches),
			zap.Int("matches", summary.Matches),
			zap.Int("incomplete_batches", summary.IncompleteBatches),
			zap.Int("skipped", summary.Skipped),
		)
	}

	if cfg.PushgatewayURL != "" {
		if err := metrics.Push(cfg.PushgatewayURL); err != nil {
			log.Error("Failed to push metrics", zap.Error(err))
		}
	}
}
