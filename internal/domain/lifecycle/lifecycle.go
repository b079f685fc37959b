// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long startup pings and graceful shutdowns may take.
const DefaultTimeout = 10 * time.Second
