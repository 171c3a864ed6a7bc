package application

import (
	"context"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

// PortfolioService backs the dashboard read API. All derivation is pure
// arithmetic over the operation log and price history; nothing here writes.
type PortfolioService struct {
	stocks  StockRepo
	ops     OperationRepo
	history PriceHistoryRepo
}

func NewPortfolioService(stocks StockRepo, ops OperationRepo, history PriceHistoryRepo) *PortfolioService {
	return &PortfolioService{stocks: stocks, ops: ops, history: history}
}

func (s *PortfolioService) Stocks(ctx context.Context) ([]domain.Stock, error) {
	return s.stocks.List(ctx)
}

// Operations returns all operations, or only one symbol's when nemonico is
// non-empty.
func (s *PortfolioService) Operations(ctx context.Context, nemonico string) ([]domain.Operation, error) {
	if nemonico == "" {
		return s.ops.List(ctx)
	}
	return s.ops.ListByNemonico(ctx, nemonico)
}

// History returns price records ascending, for one symbol or all.
func (s *PortfolioService) History(ctx context.Context, nemonico string) ([]domain.PriceRecord, error) {
	if nemonico == "" {
		return s.history.ListAll(ctx)
	}
	return s.history.ListByNemonico(ctx, nemonico)
}

// Holdings derives open positions and portfolio totals. Current prices are
// the latest persisted value per symbol.
func (s *PortfolioService) Holdings(ctx context.Context) ([]domain.Holding, domain.PortfolioTotals, error) {
	stocks, err := s.stocks.List(ctx)
	if err != nil {
		return nil, domain.PortfolioTotals{}, err
	}
	ops, err := s.ops.List(ctx)
	if err != nil {
		return nil, domain.PortfolioTotals{}, err
	}
	history, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, domain.PortfolioTotals{}, err
	}

	// history is ascending, so the last write per symbol wins.
	lastPrice := make(map[string]float64)
	for _, rec := range history {
		lastPrice[rec.Nemonico] = rec.Value
	}

	holdings := domain.ComputeHoldings(stocks, ops, lastPrice)
	return holdings, domain.Totals(holdings), nil
}

// Series values the portfolio at each price-history instant.
func (s *PortfolioService) Series(ctx context.Context) ([]domain.PortfolioPoint, error) {
	history, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ops, err := s.ops.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.PortfolioSeries(history, ops), nil
}
