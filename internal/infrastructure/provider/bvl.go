package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/renzofernandezr/StockPortafolioApp/internal/application"
	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

const dailyQuotePath = "/daily-quote"

// BVLProvider fetches daily quote snapshots from the BVL data-on-demand API.
// Each request returns every intraday update reported so far for one symbol
// and date. Calls are never retried: a failed symbol is simply reported and
// picked up again on the next run.
type BVLProvider struct {
	BaseURL string
	Client  *http.Client
}

var _ application.QuoteFeed = (*BVLProvider)(nil)

func (p *BVLProvider) Daily(ctx context.Context, nemonico, today string) ([]domain.QuoteRow, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, &domain.FeedError{Err: fmt.Errorf("invalid base url: %w", err)}
	}
	u.Path += dailyQuotePath
	q := u.Query()
	q.Set("nemonico", nemonico)
	q.Set("today", today)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &domain.FeedError{Err: fmt.Errorf("create request: %w", err)}
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.FeedError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FeedError{Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FeedError{Status: resp.StatusCode, Body: string(body)}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &domain.FeedError{Err: fmt.Errorf("decode body: %w", err)}
	}
	items, ok := payload.([]any)
	if !ok {
		// Valid JSON that is not an array (an error envelope, usually)
		// counts as an empty day, not a failure.
		return nil, nil
	}

	rows := make([]domain.QuoteRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := domain.QuoteRow{
			Nemonico:  stringField(obj, "nemonico"),
			LastDate:  stringField(obj, "lastDate"),
			LastValue: numberField(obj, "lastValue"),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// numberField tolerates both JSON numbers and numeric strings; anything else
// coerces to zero and is dropped during normalization.
func numberField(obj map[string]any, key string) float64 {
	switch v := obj[key].(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
