package pg

import (
	"context"
	"time"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
	"github.com/renzofernandezr/StockPortafolioApp/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PriceHistoryRepo struct{ db *DB }

func NewPriceHistoryRepo(db *DB) *PriceHistoryRepo { return &PriceHistoryRepo{db: db} }

const priceColumns = `
        SELECT id_historial, nemonico, fecha_hora, valor::float8
        FROM acciones_historial`

// ListRange returns one symbol's records in the half-open window
// [start, end), ascending.
func (r *PriceHistoryRepo) ListRange(ctx context.Context, nemonico string, start, end time.Time) ([]domain.PriceRecord, error) {
	const q = priceColumns + `
        WHERE nemonico=$1 AND fecha_hora >= $2 AND fecha_hora < $3
        ORDER BY fecha_hora`
	rows, err := r.db.Pool.Query(ctx, q, nemonico, start, end)
	if err != nil {
		return nil, err
	}
	return scanPriceRecords(rows)
}

func (r *PriceHistoryRepo) ListAll(ctx context.Context) ([]domain.PriceRecord, error) {
	rows, err := r.db.Pool.Query(ctx, priceColumns+` ORDER BY fecha_hora`)
	if err != nil {
		return nil, err
	}
	return scanPriceRecords(rows)
}

func (r *PriceHistoryRepo) ListByNemonico(ctx context.Context, nemonico string) ([]domain.PriceRecord, error) {
	rows, err := r.db.Pool.Query(ctx, priceColumns+` WHERE nemonico=$1 ORDER BY fecha_hora`, nemonico)
	if err != nil {
		return nil, err
	}
	return scanPriceRecords(rows)
}

// InsertBatch appends records in a single COPY. Duplicate minute filtering
// happens upstream; the table carries no unique constraint.
func (r *PriceHistoryRepo) InsertBatch(ctx context.Context, records []domain.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logx.L().With(
		zap.String("repo", "price_history"),
		zap.String("operation", "InsertBatch"),
		zap.Int("rows", len(records)),
	)
	log.Info("sql.copy_start")
	copied, err := r.db.Pool.CopyFrom(ctx,
		pgx.Identifier{"acciones_historial"},
		[]string{"nemonico", "fecha_hora", "valor"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.Nemonico, rec.QuotedAt, rec.Value}, nil
		}),
	)
	if err != nil {
		log.Error("sql.copy_failed", zap.Error(err))
		return err
	}
	log.Info("sql.copy_success", zap.Int64("rows_copied", copied))
	return nil
}

func scanPriceRecords(rows pgx.Rows) ([]domain.PriceRecord, error) {
	defer rows.Close()
	var out []domain.PriceRecord
	for rows.Next() {
		var rec domain.PriceRecord
		if err := rows.Scan(&rec.ID, &rec.Nemonico, &rec.QuotedAt, &rec.Value); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
