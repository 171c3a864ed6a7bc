package bootstrap

import (
	"context"
	"net/http"

	"github.com/renzofernandezr/StockPortafolioApp/internal/application"
	"github.com/renzofernandezr/StockPortafolioApp/internal/config"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/logx"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/pg"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/provider"
	redisstore "github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
)

type Repos struct {
	Stocks  application.StockRepo
	Ops     application.OperationRepo
	History application.PriceHistoryRepo
}

// BuildDB connects the pool and applies pending migrations. The returned
// cleanup closes the pool; call it on shutdown.
func BuildDB(ctx context.Context, cfg config.Config) (*pg.DB, func(), error) {
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		logx.L().Info("closing pg")
		db.Close()
	}
	return db, cleanup, nil
}

func BuildRepos(db *pg.DB) Repos {
	return Repos{
		Stocks:  pg.NewStockRepo(db),
		Ops:     pg.NewOperationRepo(db),
		History: pg.NewPriceHistoryRepo(db),
	}
}

// BuildFeed selects the quote feed via FEED ("bvl" or "fake").
func BuildFeed(cfg config.Config) application.QuoteFeed {
	switch cfg.Feed {
	case "fake":
		return provider.NewFake(1.0)
	default:
		return &provider.BVLProvider{
			BaseURL: cfg.FeedBaseURL,
			Client:  &http.Client{Timeout: cfg.FeedTimeout},
		}
	}
}

// BuildGuard returns the scheduled-run guard. With SYNC_GUARD=none (the
// default) every replica runs every interval and duplicate-minute rows are
// tolerated downstream.
func BuildGuard(cfg config.Config) (application.RunGuard, func(), error) {
	if cfg.SyncGuard != "redis" {
		return application.NoopGuard{}, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	guard := redisstore.New(client, cfg.GuardTTL)
	return guard, func() { _ = client.Close() }, nil
}

func BuildReconciler(r Repos, feed application.QuoteFeed, cfg config.Config) *application.Reconciler {
	return application.NewReconciler(r.Stocks, r.Ops, r.History, feed,
		application.WithUTCOffset(cfg.UTCOffsetMin))
}

func BuildPortfolio(r Repos) *application.PortfolioService {
	return application.NewPortfolioService(r.Stocks, r.Ops, r.History)
}
