package domain

import "time"

// TradingDay is one calendar day in the exchange's fixed reference timezone,
// expressed as a half-open UTC window [StartUTC, EndUTC). Lima has no
// daylight saving, so the offset is a plain constant (-300 minutes).
type TradingDay struct {
	Date     string
	StartUTC time.Time
	EndUTC   time.Time
}

// NewTradingDay resolves the trading day containing now for the given fixed
// UTC offset in minutes.
func NewTradingDay(now time.Time, offsetMin int) TradingDay {
	loc := time.FixedZone("ref", offsetMin*60)
	local := now.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc).UTC()
	return TradingDay{
		Date:     local.Format("2006-01-02"),
		StartUTC: start,
		EndUTC:   start.Add(24 * time.Hour),
	}
}

// Contains reports whether t falls inside the day's UTC window. The end is
// exclusive.
func (d TradingDay) Contains(t time.Time) bool {
	return !t.Before(d.StartUTC) && t.Before(d.EndUTC)
}
