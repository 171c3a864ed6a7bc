package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/application"
	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/logx"

	"go.uber.org/zap"
)

type Server struct {
	reconciler *application.Reconciler
	portfolio  *application.PortfolioService
	ping       func(ctx context.Context) error
}

func NewServer(reconciler *application.Reconciler, portfolio *application.PortfolioService) *Server {
	return &Server{reconciler: reconciler, portfolio: portfolio}
}

// SetReadyCheck wires the readiness probe, usually to the pg pool ping.
func (s *Server) SetReadyCheck(f func(ctx context.Context) error) { s.ping = f }

// Wire shapes of the sync response. Field names are the dashboard's existing
// contract and are kept verbatim, including supabaseCount, which predates
// the move off the hosted backend it is named after.
type syncValue struct {
	Nemonico  string  `json:"nemonico"`
	FechaHora string  `json:"fecha_hora"`
	Valor     float64 `json:"valor"`
}

type syncDataValue struct {
	syncValue
	HourKey string `json:"hourKey"`
}

type syncResult struct {
	Nemonico       string          `json:"nemonico"`
	SupabaseCount  int             `json:"supabaseCount"`
	BvlCount       int             `json:"bvlCount"`
	Synced         bool            `json:"synced"`
	Inserted       int             `json:"inserted"`
	Status         string          `json:"status"`
	ToInsert       []syncValue     `json:"toInsert,omitempty"`
	InsertedValues []syncValue     `json:"insertedValues,omitempty"`
	Data           []syncDataValue `json:"data,omitempty"`
	Error          string          `json:"error,omitempty"`
}

type syncResponse struct {
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	ExecutedAt time.Time    `json:"executedAt"`
	Today      string       `json:"today"`
	Processed  int          `json:"processed"`
	Results    []syncResult `json:"results"`
}

// HandleSync triggers one reconciliation pass. Per-symbol failures are
// reported in-band; the response is 200 unless symbol resolution itself
// fails.
func (s *Server) HandleSync(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reconciler.Reconcile(r.Context())
	if err != nil {
		logx.L().Error("sync_resolution_failed", zap.Error(err))
		internalError(w)
		return
	}

	resp := syncResponse{
		Status:     "ok",
		Message:    "Consultando a la Bolsa de Valores de Lima…",
		ExecutedAt: summary.ExecutedAt,
		Today:      summary.Today,
		Processed:  summary.Processed,
		Results:    make([]syncResult, 0, len(summary.Results)),
	}
	for _, out := range summary.Results {
		resp.Results = append(resp.Results, mapOutcome(out))
	}
	writeJSON(w, http.StatusOK, resp)
}

func mapOutcome(out domain.SymbolOutcome) syncResult {
	res := syncResult{
		Nemonico:      out.Nemonico,
		SupabaseCount: out.StoredCount,
		BvlCount:      out.FeedCount,
		Synced:        out.Synced,
		Inserted:      out.Inserted,
		Status:        string(out.Status),
		Error:         out.Err,
	}
	if out.Status != domain.SyncStatusFetched {
		return res
	}
	res.ToInsert = mapValues(out.ToInsert)
	if out.Inserted > 0 {
		res.InsertedValues = mapValues(out.ToInsert)
	}
	for _, snap := range out.Data {
		res.Data = append(res.Data, syncDataValue{
			syncValue: syncValue{Nemonico: snap.Nemonico, FechaHora: snap.FechaHora, Valor: snap.Value},
			HourKey:   snap.MinuteKey,
		})
	}
	return res
}

func mapValues(snaps []domain.QuoteSnapshot) []syncValue {
	out := make([]syncValue, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, syncValue{Nemonico: snap.Nemonico, FechaHora: snap.FechaHora, Valor: snap.Value})
	}
	return out
}

type stockDTO struct {
	Nemonico       string    `json:"nemonico"`
	NombreCompleto string    `json:"nombre_completo"`
	Moneda         string    `json:"moneda"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Server) HandleStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := s.portfolio.Stocks(r.Context())
	if err != nil {
		internalError(w)
		return
	}
	out := make([]stockDTO, 0, len(stocks))
	for _, st := range stocks {
		out = append(out, stockDTO{
			Nemonico:       st.Nemonico,
			NombreCompleto: st.FullName,
			Moneda:         st.Currency,
			CreatedAt:      st.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type operationDTO struct {
	ID         int64     `json:"id_operacion"`
	Nemonico   string    `json:"nemonico"`
	FechaHora  time.Time `json:"fecha_hora"`
	Tipo       string    `json:"tipo"`
	Precio     float64   `json:"precio"`
	Cantidad   float64   `json:"cantidad"`
	MontoTotal float64   `json:"monto_total"`
}

func (s *Server) HandleOperations(w http.ResponseWriter, r *http.Request) {
	ops, err := s.portfolio.Operations(r.Context(), r.URL.Query().Get("nemonico"))
	if err != nil {
		internalError(w)
		return
	}
	out := make([]operationDTO, 0, len(ops))
	for _, op := range ops {
		out = append(out, operationDTO{
			ID:         op.ID,
			Nemonico:   op.Nemonico,
			FechaHora:  op.ExecutedAt,
			Tipo:       string(op.Type),
			Precio:     op.Price,
			Cantidad:   op.Quantity,
			MontoTotal: op.Total,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type priceRecordDTO struct {
	ID        int64     `json:"id_historial"`
	Nemonico  string    `json:"nemonico"`
	FechaHora time.Time `json:"fecha_hora"`
	Valor     float64   `json:"valor"`
}

func (s *Server) HandleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.portfolio.History(r.Context(), r.URL.Query().Get("nemonico"))
	if err != nil {
		internalError(w)
		return
	}
	out := make([]priceRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, priceRecordDTO{
			ID:        rec.ID,
			Nemonico:  rec.Nemonico,
			FechaHora: rec.QuotedAt,
			Valor:     rec.Value,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type holdingDTO struct {
	Symbol        string    `json:"symbol"`
	Company       string    `json:"company"`
	Currency      string    `json:"currency"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	CurrentPrice  float64   `json:"currentPrice"`
	Invested      float64   `json:"invested"`
	CurrentValue  float64   `json:"currentValue"`
}

type holdingsResponse struct {
	Holdings []holdingDTO `json:"holdings"`
	Totals   struct {
		TotalInvested   float64 `json:"totalInvested"`
		TotalCurrent    float64 `json:"totalCurrent"`
		TotalGainLoss   float64 `json:"totalGainLoss"`
		GainLossPercent float64 `json:"gainLossPercent"`
	} `json:"totals"`
}

func (s *Server) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, totals, err := s.portfolio.Holdings(r.Context())
	if err != nil {
		internalError(w)
		return
	}
	resp := holdingsResponse{Holdings: make([]holdingDTO, 0, len(holdings))}
	for _, h := range holdings {
		resp.Holdings = append(resp.Holdings, holdingDTO{
			Symbol:        h.Nemonico,
			Company:       h.Company,
			Currency:      h.Currency,
			Quantity:      h.Quantity,
			PurchasePrice: h.PurchasePrice,
			PurchaseDate:  h.PurchaseDate,
			CurrentPrice:  h.CurrentPrice,
			Invested:      h.Invested(),
			CurrentValue:  h.Current(),
		})
	}
	resp.Totals.TotalInvested = totals.Invested
	resp.Totals.TotalCurrent = totals.Current
	resp.Totals.TotalGainLoss = totals.GainLoss
	resp.Totals.GainLossPercent = totals.GainLossPct
	writeJSON(w, http.StatusOK, resp)
}

type portfolioPointDTO struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"portfolio"`
}

func (s *Server) HandlePortfolio(w http.ResponseWriter, r *http.Request) {
	series, err := s.portfolio.Series(r.Context())
	if err != nil {
		internalError(w)
		return
	}
	out := make([]portfolioPointDTO, 0, len(series))
	for _, p := range series {
		out = append(out, portfolioPointDTO{Date: p.At, Value: p.Value})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
