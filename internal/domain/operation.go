package domain

import "time"

type OperationType string

const (
	OperationBuy  OperationType = "COMPRA"
	OperationSell OperationType = "VENTA"
)

// Operation is one executed buy or sell of a tracked instrument.
type Operation struct {
	ID         int64
	Nemonico   string
	ExecutedAt time.Time
	Type       OperationType
	Price      float64
	Quantity   float64
	Total      float64
}
