package provider

import (
	"context"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/application"
	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

// Ensure Fake implements application.QuoteFeed.
var _ application.QuoteFeed = (*Fake)(nil)

// Fake reports a single snapshot per symbol at the current minute. Useful
// for local runs without BVL access.
type Fake struct {
	value float64
}

func NewFake(value float64) *Fake { return &Fake{value: value} }

func (f *Fake) Daily(_ context.Context, nemonico, _ string) ([]domain.QuoteRow, error) {
	return []domain.QuoteRow{{
		Nemonico:  nemonico,
		LastDate:  time.Now().UTC().Format("2006-01-02T15:04:05"),
		LastValue: f.value,
	}}, nil
}
