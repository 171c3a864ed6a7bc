package pg

import (
	"context"
	"time"

	infraconfig "github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the process-wide datastore handle: one pool built at startup,
// injected everywhere, never torn down until shutdown.
type DB struct{ Pool *pgxpool.Pool }

func Connect(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns, cfg.MinConns = infraconfig.DefaultPGMaxConns, infraconfig.DefaultPGMinConns
	cfg.MaxConnIdleTime = 2 * time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

func (d *DB) Close()                         { d.Pool.Close() }
func (d *DB) Ping(ctx context.Context) error { return d.Pool.Ping(ctx) }
