package httpserver

import (
	"context"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/application"
	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

var _ application.StockRepo = (*fakeStockRepo)(nil)
var _ application.OperationRepo = (*fakeOperationRepo)(nil)
var _ application.PriceHistoryRepo = (*fakeHistoryRepo)(nil)
var _ application.QuoteFeed = (*fakeFeed)(nil)

type fakeStockRepo struct {
	stocks []domain.Stock
}

func (f *fakeStockRepo) List(context.Context) ([]domain.Stock, error) { return f.stocks, nil }

type fakeOperationRepo struct {
	ops []domain.Operation
}

func (f *fakeOperationRepo) List(context.Context) ([]domain.Operation, error) { return f.ops, nil }

func (f *fakeOperationRepo) ListByNemonico(_ context.Context, nemonico string) ([]domain.Operation, error) {
	var out []domain.Operation
	for _, op := range f.ops {
		if op.Nemonico == nemonico {
			out = append(out, op)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	records []domain.PriceRecord
}

func (f *fakeHistoryRepo) ListRange(_ context.Context, nemonico string, start, end time.Time) ([]domain.PriceRecord, error) {
	var out []domain.PriceRecord
	for _, rec := range f.records {
		if rec.Nemonico != nemonico || rec.QuotedAt.Before(start) || !rec.QuotedAt.Before(end) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeHistoryRepo) ListAll(context.Context) ([]domain.PriceRecord, error) {
	return f.records, nil
}

func (f *fakeHistoryRepo) ListByNemonico(_ context.Context, nemonico string) ([]domain.PriceRecord, error) {
	var out []domain.PriceRecord
	for _, rec := range f.records {
		if rec.Nemonico == nemonico {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) InsertBatch(_ context.Context, records []domain.PriceRecord) error {
	f.records = append(f.records, records...)
	return nil
}

type fakeFeed struct {
	rows map[string][]domain.QuoteRow
	errs map[string]error
}

func (f *fakeFeed) Daily(_ context.Context, nemonico, _ string) ([]domain.QuoteRow, error) {
	if err := f.errs[nemonico]; err != nil {
		return nil, err
	}
	return f.rows[nemonico], nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// NewInMemoryServer builds a Server over in-memory collaborators, pinned to
// a fixed instant so trading-day math is deterministic in tests.
func NewInMemoryServer(now time.Time) (*Server, *fakeStockRepo, *fakeOperationRepo, *fakeHistoryRepo, *fakeFeed) {
	stocks := &fakeStockRepo{}
	ops := &fakeOperationRepo{}
	history := &fakeHistoryRepo{}
	feed := &fakeFeed{rows: map[string][]domain.QuoteRow{}, errs: map[string]error{}}

	reconciler := application.NewReconciler(stocks, ops, history, feed,
		application.WithClock(fixedClock{t: now}))
	portfolio := application.NewPortfolioService(stocks, ops, history)
	return NewServer(reconciler, portfolio), stocks, ops, history, feed
}
