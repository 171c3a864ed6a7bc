package application

import (
	"context"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type fakeStockRepo struct {
	stocks []domain.Stock
	err    error
}

func (f *fakeStockRepo) List(context.Context) ([]domain.Stock, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stocks, nil
}

type fakeOperationRepo struct {
	ops []domain.Operation
	err error
}

func (f *fakeOperationRepo) List(context.Context) ([]domain.Operation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ops, nil
}

func (f *fakeOperationRepo) ListByNemonico(_ context.Context, nemonico string) ([]domain.Operation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Operation
	for _, op := range f.ops {
		if op.Nemonico == nemonico {
			out = append(out, op)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	records   []domain.PriceRecord
	listErr   error
	insertErr error
	inserts   int
}

func (f *fakeHistoryRepo) ListRange(_ context.Context, nemonico string, start, end time.Time) ([]domain.PriceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.PriceRecord
	for _, rec := range f.records {
		if rec.Nemonico != nemonico {
			continue
		}
		if rec.QuotedAt.Before(start) || !rec.QuotedAt.Before(end) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeHistoryRepo) ListAll(context.Context) ([]domain.PriceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeHistoryRepo) ListByNemonico(_ context.Context, nemonico string) ([]domain.PriceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.PriceRecord
	for _, rec := range f.records {
		if rec.Nemonico == nemonico {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) InsertBatch(_ context.Context, records []domain.PriceRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, records...)
	f.inserts++
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
