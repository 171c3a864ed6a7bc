package application

import (
	"context"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

// Reconciler merges the BVL daily-quote feed into the persisted price
// history for the current trading day. One pass per call, symbols processed
// sequentially; a failing symbol never aborts the others.
type Reconciler struct {
	stocks  StockRepo
	ops     OperationRepo
	history PriceHistoryRepo
	feed    QuoteFeed

	clock     Clock
	offsetMin int
}

type ReconcilerOption func(*Reconciler)

func WithClock(c Clock) ReconcilerOption {
	return func(r *Reconciler) { r.clock = c }
}

// WithUTCOffset sets the reference timezone as fixed minutes east of UTC.
func WithUTCOffset(minutes int) ReconcilerOption {
	return func(r *Reconciler) { r.offsetMin = minutes }
}

func NewReconciler(stocks StockRepo, ops OperationRepo, history PriceHistoryRepo, feed QuoteFeed, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		stocks:    stocks,
		ops:       ops,
		history:   history,
		feed:      feed,
		offsetMin: -300, // Lima, no DST
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		r.clock = realClock{}
	}
	return r
}

// Reconcile runs one pass over the full tracked-symbol set. The only fatal
// error is symbol resolution; everything downstream is recorded per symbol.
func (r *Reconciler) Reconcile(ctx context.Context) (domain.SyncSummary, error) {
	now := r.clock.Now()
	day := domain.NewTradingDay(now, r.offsetMin)

	symbols, err := r.resolveSymbols(ctx)
	if err != nil {
		return domain.SyncSummary{}, err
	}

	summary := domain.SyncSummary{
		ExecutedAt: now.UTC(),
		Today:      day.Date,
		Processed:  len(symbols),
		Results:    make([]domain.SymbolOutcome, 0, len(symbols)),
	}
	for _, nemonico := range symbols {
		summary.Results = append(summary.Results, r.reconcileSymbol(ctx, nemonico, day))
	}
	return summary, nil
}

// resolveSymbols prefers the tracked-stock table and falls back to the
// distinct symbols of the operation log, preserving first-seen order.
func (r *Reconciler) resolveSymbols(ctx context.Context) ([]string, error) {
	stocks, err := r.stocks.List(ctx)
	if err != nil {
		return nil, &domain.DataAccessError{Op: "list stocks", Err: err}
	}
	symbols := make([]string, 0, len(stocks))
	for _, s := range stocks {
		symbols = append(symbols, s.Nemonico)
	}
	if symbols = dedupe(symbols); len(symbols) > 0 {
		return symbols, nil
	}

	ops, err := r.ops.List(ctx)
	if err != nil {
		return nil, &domain.DataAccessError{Op: "list operations", Err: err}
	}
	symbols = symbols[:0]
	for _, op := range ops {
		symbols = append(symbols, op.Nemonico)
	}
	return dedupe(symbols), nil
}

func (r *Reconciler) reconcileSymbol(ctx context.Context, nemonico string, day domain.TradingDay) domain.SymbolOutcome {
	rows, err := r.feed.Daily(ctx, nemonico, day.Date)
	if err != nil {
		return domain.ErrorOutcome(nemonico, err)
	}
	snapshots := domain.NormalizeSnapshots(rows, nemonico)

	existing, err := r.history.ListRange(ctx, nemonico, day.StartUTC, day.EndUTC)
	if err != nil {
		return domain.ErrorOutcome(nemonico, &domain.DataAccessError{Op: "list price window", Err: err})
	}

	var toInsert []domain.QuoteSnapshot
	if len(existing) == 0 {
		// Bootstrap: nothing persisted in the window yet, take the feed
		// wholesale rather than filtering against an empty key set.
		toInsert = snapshots
	} else {
		seen := make(map[string]struct{}, len(existing))
		for _, rec := range existing {
			seen[domain.MinuteKeyUTC(rec.QuotedAt)] = struct{}{}
		}
		toInsert = make([]domain.QuoteSnapshot, 0, len(snapshots))
		for _, snap := range snapshots {
			if _, ok := seen[snap.MinuteKey]; !ok {
				toInsert = append(toInsert, snap)
			}
		}
	}

	if len(toInsert) > 0 {
		records := make([]domain.PriceRecord, 0, len(toInsert))
		for _, snap := range toInsert {
			records = append(records, domain.PriceRecord{
				Nemonico: snap.Nemonico,
				QuotedAt: snap.QuotedAt,
				Value:    snap.Value,
			})
		}
		if err := r.history.InsertBatch(ctx, records); err != nil {
			return domain.ErrorOutcome(nemonico, &domain.DataAccessError{Op: "insert price batch", Err: err})
		}
	}

	return domain.FetchedOutcome(nemonico, len(existing), snapshots, toInsert)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
