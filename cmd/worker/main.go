package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/renzofernandezr/StockPortafolioApp/internal/bootstrap"
	"github.com/renzofernandezr/StockPortafolioApp/internal/config"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/logx"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/worker"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, cleanup, err := bootstrap.BuildDB(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap db", zap.Error(err))
	}
	defer cleanup()

	guard, closeGuard, err := bootstrap.BuildGuard(cfg)
	if err != nil {
		logger.Fatal("bootstrap guard", zap.Error(err))
	}
	defer closeGuard()

	repos := bootstrap.BuildRepos(db)
	reconciler := bootstrap.BuildReconciler(repos, bootstrap.BuildFeed(cfg), cfg)

	w := &worker.SyncWorker{
		Syncer: reconciler,
		Guard:  guard,
		Every:  cfg.SyncEvery,
		Log:    logger,
	}
	w.Start(ctx)
}
