package domain

import (
	"sort"
	"time"
)

// Holding is a derived position in one instrument: bought minus sold
// quantity, volume-weighted purchase price over buys, and the most recent
// persisted price.
type Holding struct {
	Nemonico      string
	Company       string
	Currency      string
	Quantity      float64
	PurchasePrice float64
	PurchaseDate  time.Time
	CurrentPrice  float64
}

func (h Holding) Invested() float64 { return h.Quantity * h.PurchasePrice }
func (h Holding) Current() float64  { return h.Quantity * h.CurrentPrice }

// PortfolioTotals is the valuation of all open holdings.
type PortfolioTotals struct {
	Invested    float64
	Current     float64
	GainLoss    float64
	GainLossPct float64
}

// PortfolioPoint is the portfolio value at one price-history instant.
type PortfolioPoint struct {
	At    time.Time
	Value float64
}

// ComputeHoldings derives open positions from the operation log. lastPrice
// maps nemonico to the latest persisted price; instruments never priced get
// a zero current price. Positions with non-positive quantity are dropped.
func ComputeHoldings(stocks []Stock, ops []Operation, lastPrice map[string]float64) []Holding {
	type tally struct {
		bought, sold  float64
		cost, buyQty  float64
		firstPurchase time.Time
	}
	tallies := map[string]*tally{}
	for _, op := range ops {
		tl := tallies[op.Nemonico]
		if tl == nil {
			tl = &tally{}
			tallies[op.Nemonico] = tl
		}
		switch op.Type {
		case OperationBuy:
			tl.bought += op.Quantity
			tl.cost += op.Price * op.Quantity
			tl.buyQty += op.Quantity
			if tl.firstPurchase.IsZero() || op.ExecutedAt.Before(tl.firstPurchase) {
				tl.firstPurchase = op.ExecutedAt
			}
		case OperationSell:
			tl.sold += op.Quantity
		}
	}

	out := make([]Holding, 0, len(stocks))
	for _, s := range stocks {
		tl := tallies[s.Nemonico]
		if tl == nil {
			continue
		}
		qty := tl.bought - tl.sold
		if qty <= 0 {
			continue
		}
		avg := 0.0
		if tl.buyQty > 0 {
			avg = tl.cost / tl.buyQty
		}
		out = append(out, Holding{
			Nemonico:      s.Nemonico,
			Company:       s.FullName,
			Currency:      s.Currency,
			Quantity:      qty,
			PurchasePrice: avg,
			PurchaseDate:  tl.firstPurchase,
			CurrentPrice:  lastPrice[s.Nemonico],
		})
	}
	return out
}

// Totals sums invested and current value over holdings.
func Totals(holdings []Holding) PortfolioTotals {
	var t PortfolioTotals
	for _, h := range holdings {
		t.Invested += h.Invested()
		t.Current += h.Current()
	}
	t.GainLoss = t.Current - t.Invested
	if t.Invested > 0 {
		t.GainLossPct = t.GainLoss / t.Invested * 100
	}
	return t
}

// PortfolioSeries values the portfolio at every price-history instant: for
// each record, quantities held at that time (operations executed at or
// before it) priced with the latest observed value per instrument. Instants
// before the first purchase, where the value is zero, are skipped.
func PortfolioSeries(history []PriceRecord, ops []Operation) []PortfolioPoint {
	recs := make([]PriceRecord, len(history))
	copy(recs, history)
	sort.Slice(recs, func(i, j int) bool { return recs[i].QuotedAt.Before(recs[j].QuotedAt) })

	sorted := make([]Operation, len(ops))
	copy(sorted, ops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ExecutedAt.Before(sorted[j].ExecutedAt) })

	held := map[string]float64{}
	price := map[string]float64{}
	next := 0

	var out []PortfolioPoint
	for _, rec := range recs {
		for next < len(sorted) && !sorted[next].ExecutedAt.After(rec.QuotedAt) {
			op := sorted[next]
			if op.Type == OperationBuy {
				held[op.Nemonico] += op.Quantity
			} else {
				held[op.Nemonico] -= op.Quantity
			}
			next++
		}
		price[rec.Nemonico] = rec.Value

		var value float64
		for nem, qty := range held {
			if qty > 0 {
				value += qty * price[nem]
			}
		}
		if value > 0 {
			out = append(out, PortfolioPoint{At: rec.QuotedAt, Value: value})
		}
	}
	return out
}
