package pg

import (
	"context"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
)

type StockRepo struct{ db *DB }

func NewStockRepo(db *DB) *StockRepo { return &StockRepo{db: db} }

func (r *StockRepo) List(ctx context.Context) ([]domain.Stock, error) {
	const q = `
        SELECT nemonico, nombre_completo, moneda, created_at
        FROM acciones
        ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Stock
	for rows.Next() {
		var s domain.Stock
		if err := rows.Scan(&s.Nemonico, &s.FullName, &s.Currency, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
