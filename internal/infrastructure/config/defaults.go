package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSyncEvery       = 15 * time.Minute
	DefaultFeedTimeout     = 4 * time.Second
	DefaultPGMaxConns      = 5
	DefaultPGMinConns      = 1
)
