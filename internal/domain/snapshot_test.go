package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSnapshots_MinuteKeyFromPrefix(t *testing.T) {
	t.Parallel()
	rows := []QuoteRow{{LastDate: "2024-01-02T14:30:00", LastValue: 5.25}}
	snaps := NormalizeSnapshots(rows, "CPACASC1")
	require.Len(t, snaps, 1)
	require.Equal(t, "2024-01-02 14:30", snaps[0].MinuteKey)
	require.Equal(t, "CPACASC1", snaps[0].Nemonico)
	require.Equal(t, "2024-01-02T14:30:00", snaps[0].FechaHora)
}

func TestNormalizeSnapshots_MinuteKeyFromInstant(t *testing.T) {
	t.Parallel()
	// RFC3339 with zone also matches the prefix rule, so the key is taken
	// verbatim; both derivations must agree for UTC timestamps.
	rows := []QuoteRow{{LastDate: "2024-01-02T14:30:00Z", LastValue: 1}}
	snaps := NormalizeSnapshots(rows, "X")
	require.Len(t, snaps, 1)
	require.Equal(t, "2024-01-02 14:30", snaps[0].MinuteKey)
	require.Equal(t, MinuteKeyUTC(snaps[0].QuotedAt), snaps[0].MinuteKey)
}

func TestNormalizeSnapshots_DateOnly(t *testing.T) {
	t.Parallel()
	rows := []QuoteRow{{LastDate: "2024-01-02", LastValue: 3.1}}
	snaps := NormalizeSnapshots(rows, "X")
	require.Len(t, snaps, 1)
	require.Equal(t, "2024-01-02 00:00", snaps[0].MinuteKey)
}

func TestNormalizeSnapshots_DiscardsMalformed(t *testing.T) {
	t.Parallel()
	rows := []QuoteRow{
		{LastDate: "", LastValue: 5},
		{LastDate: "2024-01-02", LastValue: 0},
		{LastDate: "not a timestamp", LastValue: 2},
	}
	require.Empty(t, NormalizeSnapshots(rows, "X"))
}

func TestNormalizeSnapshots_SpaceSeparatedAndFallback(t *testing.T) {
	t.Parallel()
	rows := []QuoteRow{
		{Nemonico: "ALICORC1", LastDate: "2024-01-02 09:15:30", LastValue: 7.8},
		{LastDate: "2024-01-02 09:16:00", LastValue: 7.9},
	}
	snaps := NormalizeSnapshots(rows, "FALLBACK")
	require.Len(t, snaps, 2)
	require.Equal(t, "ALICORC1", snaps[0].Nemonico)
	require.Equal(t, "2024-01-02 09:15", snaps[0].MinuteKey)
	require.Equal(t, "FALLBACK", snaps[1].Nemonico)
}

func TestMinuteKeyUTC_ConvertsZone(t *testing.T) {
	t.Parallel()
	lima := time.FixedZone("lima", -5*3600)
	at := time.Date(2024, 1, 2, 9, 30, 45, 0, lima)
	require.Equal(t, "2024-01-02 14:30", MinuteKeyUTC(at))
}
