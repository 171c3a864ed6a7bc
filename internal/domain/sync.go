package domain

import "time"

type SyncStatus string

const (
	SyncStatusFetched SyncStatus = "fetched"
	SyncStatusError   SyncStatus = "error"
)

// SymbolOutcome is the per-symbol result of one reconciliation pass. It is a
// closed two-variant record: fetched outcomes carry counts and payloads,
// error outcomes carry only the message with counts zeroed.
type SymbolOutcome struct {
	Nemonico    string
	Status      SyncStatus
	StoredCount int
	FeedCount   int
	Synced      bool
	Inserted    int
	ToInsert    []QuoteSnapshot
	Data        []QuoteSnapshot
	Err         string
}

// FetchedOutcome builds the success variant. Synced compares raw counts, not
// minute-key sets: equal-sized but different minute sets still report true.
func FetchedOutcome(nemonico string, stored int, data, toInsert []QuoteSnapshot) SymbolOutcome {
	return SymbolOutcome{
		Nemonico:    nemonico,
		Status:      SyncStatusFetched,
		StoredCount: stored,
		FeedCount:   len(data),
		Synced:      stored == len(data),
		Inserted:    len(toInsert),
		ToInsert:    toInsert,
		Data:        data,
	}
}

// ErrorOutcome builds the failure variant.
func ErrorOutcome(nemonico string, err error) SymbolOutcome {
	return SymbolOutcome{
		Nemonico: nemonico,
		Status:   SyncStatusError,
		Err:      err.Error(),
	}
}

// SyncSummary aggregates one reconciliation run, results in symbol
// resolution order.
type SyncSummary struct {
	ExecutedAt time.Time
	Today      string
	Processed  int
	Results    []SymbolOutcome
}
