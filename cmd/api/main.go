package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/renzofernandezr/StockPortafolioApp/internal/bootstrap"
	"github.com/renzofernandezr/StockPortafolioApp/internal/config"
	infraconfig "github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/config"
	httpserver "github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/http"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	logger := logx.L()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	addr := ":" + cfg.Port

	db, cleanup, err := bootstrap.BuildDB(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap db", zap.Error(err))
	}
	defer cleanup()

	repos := bootstrap.BuildRepos(db)
	feed := bootstrap.BuildFeed(cfg)
	reconciler := bootstrap.BuildReconciler(repos, feed, cfg)
	portfolio := bootstrap.BuildPortfolio(repos)

	srv := httpserver.NewServer(reconciler, portfolio)
	srv.SetReadyCheck(db.Ping)
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), infraconfig.DefaultShutdownTimeout)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
