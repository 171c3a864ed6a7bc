package domain

import (
	"regexp"
	"time"
)

// QuoteRow is one raw element of the feed's daily-quote array. The feed is
// not trusted: rows may miss fields or carry unparseable timestamps and are
// dropped during normalization instead of failing the symbol.
type QuoteRow struct {
	Nemonico  string
	LastDate  string
	LastValue float64
}

// QuoteSnapshot is a feed row normalized for reconciliation. FechaHora keeps
// the provider timestamp verbatim; QuotedAt is its instant interpretation;
// MinuteKey is the deduplication unit against persisted records.
type QuoteSnapshot struct {
	Nemonico  string
	FechaHora string
	QuotedAt  time.Time
	Value     float64
	MinuteKey string
}

const minuteKeyLayout = "2006-01-02 15:04"

// Feed timestamps come in a handful of shapes; zoneless ones are read as UTC
// so that their minute key matches the verbatim prefix rule below.
var feedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var minutePrefixRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ](\d{2}:\d{2})`)

// MinuteKeyUTC renders an instant as its UTC minute bucket.
func MinuteKeyUTC(t time.Time) string {
	return t.UTC().Format(minuteKeyLayout)
}

func parseFeedTime(ts string) (time.Time, bool) {
	for _, layout := range feedTimeLayouts {
		if t, err := time.ParseInLocation(layout, ts, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeSnapshots filters and normalizes raw feed rows. Rows missing a
// timestamp or carrying a zero price are discarded. The minute key is taken
// verbatim from a leading "YYYY-MM-DD[T ]HH:MM" (no timezone conversion);
// otherwise it is the UTC minute of the timestamp parsed as an instant. Rows
// that match neither rule are discarded.
func NormalizeSnapshots(rows []QuoteRow, fallbackNemonico string) []QuoteSnapshot {
	out := make([]QuoteSnapshot, 0, len(rows))
	for _, row := range rows {
		if row.LastDate == "" || row.LastValue == 0 {
			continue
		}
		var key string
		var at time.Time
		if m := minutePrefixRe.FindStringSubmatch(row.LastDate); m != nil {
			key = m[1] + " " + m[2]
			at, _ = parseFeedTime(row.LastDate)
			if at.IsZero() {
				// Full string is garbage past the minute prefix; the prefix
				// alone still identifies the instant.
				at, _ = time.ParseInLocation("2006-01-02T15:04", m[1]+"T"+m[2], time.UTC)
			}
		} else {
			t, ok := parseFeedTime(row.LastDate)
			if !ok {
				continue
			}
			key = MinuteKeyUTC(t)
			at = t
		}
		nem := row.Nemonico
		if nem == "" {
			nem = fallbackNemonico
		}
		out = append(out, QuoteSnapshot{
			Nemonico:  nem,
			FechaHora: row.LastDate,
			QuotedAt:  at,
			Value:     row.LastValue,
			MinuteKey: key,
		})
	}
	return out
}
