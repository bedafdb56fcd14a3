// Package lifecycle holds shared start/stop constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
