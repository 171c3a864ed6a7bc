package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(d int, hour int) time.Time {
	return time.Date(2024, 1, d, hour, 0, 0, 0, time.UTC)
}

func TestComputeHoldings(t *testing.T) {
	t.Parallel()
	stocks := []Stock{
		{Nemonico: "CPACASC1", FullName: "Cementos Pacasmayo", Currency: "PEN"},
		{Nemonico: "ALICORC1", FullName: "Alicorp", Currency: "PEN"},
		{Nemonico: "BAP", FullName: "Credicorp", Currency: "USD"},
	}
	ops := []Operation{
		{Nemonico: "CPACASC1", Type: OperationBuy, Price: 10, Quantity: 100, ExecutedAt: day(2, 10)},
		{Nemonico: "CPACASC1", Type: OperationBuy, Price: 12, Quantity: 100, ExecutedAt: day(1, 10)},
		{Nemonico: "CPACASC1", Type: OperationSell, Price: 13, Quantity: 50, ExecutedAt: day(3, 10)},
		// fully closed position, must not appear
		{Nemonico: "ALICORC1", Type: OperationBuy, Price: 7, Quantity: 20, ExecutedAt: day(1, 9)},
		{Nemonico: "ALICORC1", Type: OperationSell, Price: 8, Quantity: 20, ExecutedAt: day(2, 9)},
	}
	prices := map[string]float64{"CPACASC1": 11.5}

	holdings := ComputeHoldings(stocks, ops, prices)
	require.Len(t, holdings, 1)
	h := holdings[0]
	require.Equal(t, "CPACASC1", h.Nemonico)
	require.Equal(t, "Cementos Pacasmayo", h.Company)
	require.InDelta(t, 150, h.Quantity, 1e-9)
	require.InDelta(t, 11, h.PurchasePrice, 1e-9) // (10*100+12*100)/200
	require.Equal(t, day(1, 10), h.PurchaseDate)
	require.InDelta(t, 11.5, h.CurrentPrice, 1e-9)
}

func TestTotals(t *testing.T) {
	t.Parallel()
	holdings := []Holding{
		{Quantity: 100, PurchasePrice: 10, CurrentPrice: 12},
		{Quantity: 50, PurchasePrice: 20, CurrentPrice: 18},
	}
	tot := Totals(holdings)
	require.InDelta(t, 2000, tot.Invested, 1e-9)
	require.InDelta(t, 2100, tot.Current, 1e-9)
	require.InDelta(t, 100, tot.GainLoss, 1e-9)
	require.InDelta(t, 5, tot.GainLossPct, 1e-9)
}

func TestPortfolioSeries(t *testing.T) {
	t.Parallel()
	ops := []Operation{
		{Nemonico: "CPACASC1", Type: OperationBuy, Quantity: 10, ExecutedAt: day(2, 12)},
	}
	history := []PriceRecord{
		{Nemonico: "CPACASC1", QuotedAt: day(2, 10), Value: 10}, // before purchase
		{Nemonico: "CPACASC1", QuotedAt: day(2, 14), Value: 11},
		{Nemonico: "CPACASC1", QuotedAt: day(2, 16), Value: 12},
	}
	series := PortfolioSeries(history, ops)
	require.Len(t, series, 2)
	require.InDelta(t, 110, series[0].Value, 1e-9)
	require.InDelta(t, 120, series[1].Value, 1e-9)
	require.Equal(t, day(2, 14), series[0].At)
}
