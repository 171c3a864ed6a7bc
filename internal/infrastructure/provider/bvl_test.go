package provider_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func httpClient(resBody string, code int, captured **http.Request) *http.Client {
	return &http.Client{
		Timeout: 2 * time.Second,
		Transport: roundTripFunc(func(r *http.Request) *http.Response {
			if captured != nil {
				*captured = r
			}
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(resBody)),
				Header:     make(http.Header),
				Request:    r,
			}
		}),
	}
}

const sampleOK = `[
  {"nemonico": "CPACASC1", "lastDate": "2024-01-02T14:30:00", "lastValue": 5.25},
  {"lastDate": "2024-01-02T14:31:00", "lastValue": "5.30"},
  "garbage row",
  {"lastDate": 12345, "lastValue": true}
]`

func TestDaily_ParsesRowsAndQuery(t *testing.T) {
	var captured *http.Request
	p := &provider.BVLProvider{
		BaseURL: "https://dataondemand.bvl.com.pe/v1/stock-quote",
		Client:  httpClient(sampleOK, 200, &captured),
	}
	rows, err := p.Daily(context.Background(), "CPACASC1", "2024-01-02")
	require.NoError(t, err)

	require.Equal(t, "/v1/stock-quote/daily-quote", captured.URL.Path)
	require.Equal(t, "CPACASC1", captured.URL.Query().Get("nemonico"))
	require.Equal(t, "2024-01-02", captured.URL.Query().Get("today"))

	require.Len(t, rows, 3) // non-object element skipped
	require.Equal(t, "CPACASC1", rows[0].Nemonico)
	require.InDelta(t, 5.25, rows[0].LastValue, 1e-9)
	require.InDelta(t, 5.30, rows[1].LastValue, 1e-9) // numeric string coerced
	require.Empty(t, rows[2].LastDate)                // junk fields zeroed
}

func TestDaily_NonArrayBodyIsEmpty(t *testing.T) {
	p := &provider.BVLProvider{
		BaseURL: "https://dataondemand.bvl.com.pe/v1/stock-quote",
		Client:  httpClient(`{"message":"no data"}`, 200, nil),
	}
	rows, err := p.Daily(context.Background(), "CPACASC1", "2024-01-02")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestDaily_Non2xxIsFeedError(t *testing.T) {
	p := &provider.BVLProvider{
		BaseURL: "https://dataondemand.bvl.com.pe/v1/stock-quote",
		Client:  httpClient("rate limited", 429, nil),
	}
	_, err := p.Daily(context.Background(), "CPACASC1", "2024-01-02")
	require.Error(t, err)
	var fe *domain.FeedError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 429, fe.Status)
	require.Equal(t, "rate limited", fe.Body)
}

func TestDaily_InvalidJSONIsFeedError(t *testing.T) {
	p := &provider.BVLProvider{
		BaseURL: "https://dataondemand.bvl.com.pe/v1/stock-quote",
		Client:  httpClient("<html>gateway error</html>", 200, nil),
	}
	_, err := p.Daily(context.Background(), "CPACASC1", "2024-01-02")
	require.Error(t, err)
	var fe *domain.FeedError
	require.ErrorAs(t, err, &fe)
}
