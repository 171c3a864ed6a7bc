package domain

import "time"

// PriceRecord is one persisted intraday price point. Records are append-only:
// the store enforces no uniqueness on (nemonico, quoted_at), deduplication by
// minute key is the reconciler's job.
type PriceRecord struct {
	ID       int64
	Nemonico string
	QuotedAt time.Time
	Value    float64
}
