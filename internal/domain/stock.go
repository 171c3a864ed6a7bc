package domain

import "time"

// Stock is a tracked BVL instrument. Nemonico is the exchange ticker.
type Stock struct {
	Nemonico  string
	FullName  string
	Currency  string
	CreatedAt time.Time
}
