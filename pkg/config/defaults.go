package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// India Standard Time. The reference zone is a fixed offset with no DST.
	DefaultReferenceTZOffset = "+05:30"
	DefaultReferenceTZName   = "IST"
	DefaultMaxSlotDuration   = 12 * time.Hour

	DefaultRequestTimeout = 10 * time.Second
	DefaultMaxRequestSize = 256 * 1024 // 256KB

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = time.Minute

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
