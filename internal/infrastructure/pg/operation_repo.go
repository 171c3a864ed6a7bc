package pg

import (
	"context"

	"github.com/renzofernandezr/StockPortafolioApp/internal/domain"
	"github.com/jackc/pgx/v5"
)

type OperationRepo struct{ db *DB }

func NewOperationRepo(db *DB) *OperationRepo { return &OperationRepo{db: db} }

const operationColumns = `
        SELECT id_operacion, nemonico, fecha_hora, tipo,
               precio::float8, cantidad::float8, monto_total::float8
        FROM acciones_operaciones`

func (r *OperationRepo) List(ctx context.Context) ([]domain.Operation, error) {
	rows, err := r.db.Pool.Query(ctx, operationColumns+` ORDER BY fecha_hora DESC`)
	if err != nil {
		return nil, err
	}
	return scanOperations(rows)
}

func (r *OperationRepo) ListByNemonico(ctx context.Context, nemonico string) ([]domain.Operation, error) {
	rows, err := r.db.Pool.Query(ctx, operationColumns+` WHERE nemonico=$1 ORDER BY fecha_hora DESC`, nemonico)
	if err != nil {
		return nil, err
	}
	return scanOperations(rows)
}

func scanOperations(rows pgx.Rows) ([]domain.Operation, error) {
	defer rows.Close()
	var out []domain.Operation
	for rows.Next() {
		var op domain.Operation
		var tipo string
		if err := rows.Scan(&op.ID, &op.Nemonico, &op.ExecutedAt, &tipo,
			&op.Price, &op.Quantity, &op.Total); err != nil {
			return nil, err
		}
		op.Type = domain.OperationType(tipo)
		out = append(out, op)
	}
	return out, rows.Err()
}
