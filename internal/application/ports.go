package application

import (
	"context"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

type StockRepo interface {
	// List returns tracked stocks, most recently added first.
	List(ctx context.Context) ([]domain.Stock, error)
}

type OperationRepo interface {
	// List returns all operations, most recent first.
	List(ctx context.Context) ([]domain.Operation, error)
	ListByNemonico(ctx context.Context, nemonico string) ([]domain.Operation, error)
}

type PriceHistoryRepo interface {
	// ListRange returns records for one symbol inside the half-open UTC
	// window [start, end), ascending.
	ListRange(ctx context.Context, nemonico string, start, end time.Time) ([]domain.PriceRecord, error)
	ListAll(ctx context.Context) ([]domain.PriceRecord, error)
	ListByNemonico(ctx context.Context, nemonico string) ([]domain.PriceRecord, error)
	// InsertBatch appends records in one batch. The store enforces no
	// uniqueness; callers filter duplicates beforehand.
	InsertBatch(ctx context.Context, records []domain.PriceRecord) error
}

type QuoteFeed interface {
	// Daily returns the raw daily-quote rows for one symbol and date
	// (YYYY-MM-DD). Implementations return a *domain.FeedError on non-2xx
	// or transport failure, and an empty slice for non-array payloads.
	Daily(ctx context.Context, nemonico, today string) ([]domain.QuoteRow, error)
}
